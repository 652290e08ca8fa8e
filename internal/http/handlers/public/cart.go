package public

import (
	"strings"

	"github.com/maison-next/internal/constants"
	"github.com/maison-next/internal/http/response"
	"github.com/maison-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CartAddRequest 加购请求
type CartAddRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// CartUpdateRequest 购物车行数量更新请求
type CartUpdateRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Quantity  *int   `json:"quantity" binding:"required"`
}

// CartRemoveRequest 购物车行移除请求
type CartRemoveRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

// cartToken 读取请求的购物车令牌，缺失时签发新令牌。
// 令牌始终随响应头回传，前端收到后在后续请求中原样携带
func (h *Handler) cartToken(c *gin.Context) string {
	raw := strings.TrimSpace(c.GetHeader(constants.CartTokenHeader))
	if raw == "" {
		if cookie, err := c.Cookie(constants.CartTokenCookie); err == nil {
			raw = strings.TrimSpace(cookie)
		}
	}
	token := h.CartService.EnsureToken(raw)
	c.Header(constants.CartTokenHeader, token)
	return token
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	token := h.cartToken(c)
	view, err := h.CartService.Get(c.Request.Context(), token)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}
	response.Success(c, view)
}

// AddCartItem 加购
func (h *Handler) AddCartItem(c *gin.Context) {
	var req CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	token := h.cartToken(c)
	view, err := h.CartService.AddItem(c.Request.Context(), token, service.AddCartItemInput{
		ProductID: req.ProductID,
		Color:     req.Color,
		Size:      req.Size,
		Quantity:  quantity,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// UpdateCartItem 修改购物车行数量（数量小于 1 即移除）
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req CartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	token := h.cartToken(c)
	view, err := h.CartService.UpdateQuantity(c.Request.Context(), token, req.ProductID, req.Color, req.Size, *req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// RemoveCartItem 移除购物车行
func (h *Handler) RemoveCartItem(c *gin.Context) {
	var req CartRemoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	token := h.cartToken(c)
	view, err := h.CartService.RemoveItem(c.Request.Context(), token, req.ProductID, req.Color, req.Size)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	token := h.cartToken(c)
	if err := h.CartService.Clear(c.Request.Context(), token); err != nil {
		respondError(c, response.CodeInternal, "error.cart_update_failed", err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
