package public

import (
	"errors"

	"github.com/maison-next/internal/http/response"
	"github.com/maison-next/internal/models"
	"github.com/maison-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetSiteConfig 获取站点配置
func (h *Handler) GetSiteConfig(c *gin.Context) {
	config, err := h.SettingService.GetSiteConfig()
	if err != nil {
		respondError(c, response.CodeInternal, "error.setting_fetch_failed", err)
		return
	}
	response.Success(c, config)
}

// GetPages 获取前台页面列表（导航用，只含标题与 slug）
func (h *Handler) GetPages(c *gin.Context) {
	pages, _, err := h.PageService.List("", 0, 0)
	if err != nil {
		respondError(c, response.CodeInternal, "error.page_fetch_failed", err)
		return
	}

	result := make([]gin.H, 0, len(pages))
	for _, page := range pages {
		result = append(result, gin.H{
			"id":      page.ID,
			"title":   page.Title,
			"slug":    page.Slug,
			"is_home": page.IsHome,
		})
	}
	response.Success(c, result)
}

// GetHomePage 获取首页（含可见组件，配置已合并默认值）
func (h *Handler) GetHomePage(c *gin.Context) {
	page, err := h.PageService.GetHome()
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.page_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.page_fetch_failed", err)
		return
	}
	h.respondRenderedPage(c, page)
}

// GetPageBySlug 根据 slug 获取页面（含可见组件，配置已合并默认值）
func (h *Handler) GetPageBySlug(c *gin.Context) {
	slug := c.Param("slug")
	page, err := h.PageService.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.page_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.page_fetch_failed", err)
		return
	}
	h.respondRenderedPage(c, page)
}

// respondRenderedPage 前台只下发 is_active 的组件，按 position 正序
func (h *Handler) respondRenderedPage(c *gin.Context, page *models.Page) {
	components, err := h.ComponentService.ListForPage(page.ID, true)
	if err != nil {
		respondError(c, response.CodeInternal, "error.component_fetch_failed", err)
		return
	}
	page.Components = components
	response.Success(c, page)
}
