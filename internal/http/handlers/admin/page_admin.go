package admin

import (
	"errors"
	"strconv"

	"github.com/maison-next/internal/http/response"
	"github.com/maison-next/internal/service"

	"github.com/gin-gonic/gin"
)

// PageUpsertRequest 页面创建/更新请求
type PageUpsertRequest struct {
	Title  string `json:"title"`
	Slug   string `json:"slug"`
	IsHome *bool  `json:"is_home"`
}

// GetAdminPages 获取后台页面列表
func (h *Handler) GetAdminPages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	page, pageSize = normalizePagination(page, pageSize)

	pages, total, err := h.PageService.List(c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.page_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, pages, pagination)
}

// GetAdminPage 获取后台页面详情（含组件，配置已合并默认值）
func (h *Handler) GetAdminPage(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	page, err := h.PageService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.page_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.page_fetch_failed", err)
		return
	}

	components, err := h.ComponentService.ListForPage(page.ID, false)
	if err != nil {
		respondError(c, response.CodeInternal, "error.component_fetch_failed", err)
		return
	}
	page.Components = components

	response.Success(c, page)
}

// CreatePage 创建页面
func (h *Handler) CreatePage(c *gin.Context) {
	var req PageUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	page, err := h.PageService.Create(service.PageInput{
		Title:  req.Title,
		Slug:   req.Slug,
		IsHome: req.IsHome,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPage):
			respondError(c, response.CodeBadRequest, "error.invalid_page", nil)
		case errors.Is(err, service.ErrPageSlugTaken):
			respondError(c, response.CodeConflict, "error.page_slug_taken", nil)
		default:
			respondError(c, response.CodeInternal, "error.page_create_failed", err)
		}
		return
	}

	response.Success(c, page)
}

// UpdatePage 更新页面
func (h *Handler) UpdatePage(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req PageUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	page, err := h.PageService.Update(id, service.PageInput{
		Title:  req.Title,
		Slug:   req.Slug,
		IsHome: req.IsHome,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.page_not_found", nil)
		case errors.Is(err, service.ErrInvalidPage):
			respondError(c, response.CodeBadRequest, "error.invalid_page", nil)
		case errors.Is(err, service.ErrPageSlugTaken):
			respondError(c, response.CodeConflict, "error.page_slug_taken", nil)
		default:
			respondError(c, response.CodeInternal, "error.page_update_failed", err)
		}
		return
	}

	response.Success(c, page)
}

// DeletePage 删除页面，返回建议选中的后继页面
func (h *Handler) DeletePage(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	fallback, err := h.PageService.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.page_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.page_delete_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"deleted":  true,
		"fallback": fallback,
	})
}
