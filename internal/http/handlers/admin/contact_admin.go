package admin

import (
	"errors"
	"strconv"

	"github.com/maison-next/internal/http/response"
	"github.com/maison-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminContactMessages 获取后台留言列表
func (h *Handler) GetAdminContactMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	messages, total, err := h.ContactService.List(c.Query("status"), c.Query("page_slug"), c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.contact_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, messages, pagination)
}

// CloseContactMessage 关闭留言
func (h *Handler) CloseContactMessage(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	message, err := h.ContactService.Close(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.contact_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.contact_update_failed", err)
		}
		return
	}

	response.Success(c, message)
}

// DeleteContactMessage 删除留言
func (h *Handler) DeleteContactMessage(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.ContactService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.contact_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.contact_delete_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"deleted": true,
	})
}
