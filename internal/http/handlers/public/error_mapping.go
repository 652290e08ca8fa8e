package public

import (
	"errors"

	"github.com/maison-next/internal/http/response"
	"github.com/maison-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCartItem, code: response.CodeBadRequest, key: "error.invalid_cart_item"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, key: "error.product_unavailable"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.not_found"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidOrder, code: response.CodeBadRequest, key: "error.invalid_order"},
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, key: "error.product_unavailable"},
}

var contactErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidContact, code: response.CodeBadRequest, key: "error.invalid_contact"},
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.checkout_failed")
}

func respondContactError(c *gin.Context, err error) {
	respondWithMappedError(c, err, contactErrorRules, response.CodeInternal, "error.contact_submit_failed")
}
