package public

import (
	"github.com/maison-next/internal/http/response"
	"github.com/maison-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactRequest 留言提交请求
type ContactRequest struct {
	Email    string `json:"email" binding:"required"`
	Message  string `json:"message" binding:"required"`
	PageSlug string `json:"page_slug"`
}

// SubmitContact 提交留言
func (h *Handler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	message, err := h.ContactService.Submit(service.ContactInput{
		Email:    req.Email,
		Message:  req.Message,
		PageSlug: req.PageSlug,
	})
	if err != nil {
		respondContactError(c, err)
		return
	}

	response.Success(c, gin.H{
		"id":     message.ID,
		"status": message.Status,
	})
}
