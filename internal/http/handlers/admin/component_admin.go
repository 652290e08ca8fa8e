package admin

import (
	"errors"

	"github.com/maison-next/internal/blocks"
	"github.com/maison-next/internal/http/response"
	"github.com/maison-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ComponentAddRequest 新增组件请求
type ComponentAddRequest struct {
	Type      string                 `json:"type" binding:"required"`
	Variant   string                 `json:"variant"`
	Overrides map[string]interface{} `json:"config"`
}

// ComponentConfigRequest 组件配置更新请求
type ComponentConfigRequest struct {
	Config map[string]interface{} `json:"config" binding:"required"`
}

// ComponentActiveRequest 组件显隐切换请求
type ComponentActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// ComponentReorderRequest 组件重排请求
type ComponentReorderRequest struct {
	FromIndex *int `json:"from_index" binding:"required"`
	ToIndex   *int `json:"to_index" binding:"required"`
}

// GetComponentTypes 获取受支持的组件类型及其默认配置与变体
func (h *Handler) GetComponentTypes(c *gin.Context) {
	types := blocks.Types()
	result := make([]gin.H, 0, len(types))
	for _, componentType := range types {
		result = append(result, gin.H{
			"type":     componentType,
			"defaults": blocks.DefaultsFor(componentType),
			"variants": blocks.VariantsFor(componentType),
		})
	}
	response.Success(c, result)
}

// AddComponent 在页面末尾追加组件
func (h *Handler) AddComponent(c *gin.Context) {
	pageID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req ComponentAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	component, err := h.ComponentService.Add(service.AddComponentInput{
		PageID:    pageID,
		Type:      req.Type,
		Variant:   req.Variant,
		Overrides: req.Overrides,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.page_not_found", nil)
		case errors.Is(err, service.ErrInvalidComponent):
			respondError(c, response.CodeBadRequest, "error.invalid_component", nil)
		default:
			respondError(c, response.CodeInternal, "error.component_create_failed", err)
		}
		return
	}

	response.Success(c, component)
}

// UpdateComponentConfig 更新组件配置
func (h *Handler) UpdateComponentConfig(c *gin.Context) {
	id, ok := parseUintParam(c, "component_id")
	if !ok {
		return
	}

	var req ComponentConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	component, err := h.ComponentService.UpdateConfig(id, req.Config)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.component_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.component_update_failed", err)
		}
		return
	}

	response.Success(c, component)
}

// SetComponentActive 切换组件显隐
func (h *Handler) SetComponentActive(c *gin.Context) {
	id, ok := parseUintParam(c, "component_id")
	if !ok {
		return
	}

	var req ComponentActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	component, err := h.ComponentService.SetActive(id, *req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.component_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.component_update_failed", err)
		}
		return
	}

	response.Success(c, component)
}

// ReorderComponents 重排页面组件，返回重排后的完整组件列表
func (h *Handler) ReorderComponents(c *gin.Context) {
	pageID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req ComponentReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	components, err := h.ComponentService.Reorder(service.ReorderInput{
		PageID:    pageID,
		FromIndex: *req.FromIndex,
		ToIndex:   *req.ToIndex,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.page_not_found", nil)
		case errors.Is(err, service.ErrInvalidComponent):
			respondError(c, response.CodeBadRequest, "error.invalid_component", nil)
		default:
			// 部分写入失败：components 仍是落库后的权威状态，随错误一并返回
			requestLog(c).Warnw("component_reorder_partial_failure", "page_id", pageID, "error", err)
			response.ErrorWithData(c, response.CodeInternal, "reorder failed", gin.H{"components": components})
		}
		return
	}

	response.Success(c, components)
}

// DeleteComponent 删除组件
func (h *Handler) DeleteComponent(c *gin.Context) {
	id, ok := parseUintParam(c, "component_id")
	if !ok {
		return
	}

	if err := h.ComponentService.Remove(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.component_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.component_delete_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"deleted": true,
	})
}
