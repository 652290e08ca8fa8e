package admin

import (
	"github.com/maison-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// SettingUpdateRequest 站点设置更新请求
type SettingUpdateRequest struct {
	Value map[string]interface{} `json:"value" binding:"required"`
}

// GetAdminSiteConfig 获取站点配置（含默认值）
func (h *Handler) GetAdminSiteConfig(c *gin.Context) {
	config, err := h.SettingService.GetSiteConfig()
	if err != nil {
		respondError(c, response.CodeInternal, "error.setting_fetch_failed", err)
		return
	}
	response.Success(c, config)
}

// UpdateAdminSiteConfig 更新站点配置
func (h *Handler) UpdateAdminSiteConfig(c *gin.Context) {
	var req SettingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	value, err := h.SettingService.UpdateSiteConfig(req.Value)
	if err != nil {
		respondError(c, response.CodeInternal, "error.setting_update_failed", err)
		return
	}
	response.Success(c, value)
}
