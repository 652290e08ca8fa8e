package service

import "errors"

// 服务层哨兵错误，HTTP 层据此映射状态码
var (
	ErrNotFound            = errors.New("record not found")
	ErrInvalidPage         = errors.New("invalid page input")
	ErrPageSlugTaken       = errors.New("page slug already taken")
	ErrInvalidComponent    = errors.New("invalid component input")
	ErrInvalidProduct      = errors.New("invalid product input")
	ErrInvalidCartItem     = errors.New("invalid cart item input")
	ErrProductNotAvailable = errors.New("product not available")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrInvalidOrder        = errors.New("invalid order input")
	ErrOrderStatusInvalid  = errors.New("invalid order status transition")
	ErrInvalidContact      = errors.New("invalid contact input")
)
