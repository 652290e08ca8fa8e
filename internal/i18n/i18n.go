package i18n

import (
	"strings"

	"github.com/maison-next/internal/constants"

	"github.com/gin-gonic/gin"
)

// DefaultLocale 默认语言
const DefaultLocale = "en-US"

var catalog = map[string]map[string]string{
	"en-US": {
		"error.bad_request":            "invalid request",
		"error.not_found":              "resource not found",
		"error.internal":               "internal server error",
		"error.rate_limited":           "too many requests, slow down",
		"error.rate_limit_unavailable": "rate limiter is unavailable, try again later",
		"error.invalid_page":           "page title or slug is invalid",
		"error.page_slug_taken":        "a page with this slug already exists",
		"error.invalid_component":      "component type or position is invalid",
		"error.invalid_product":        "product data is invalid",
		"error.invalid_cart_item":      "cart item is invalid",
		"error.product_unavailable":    "product is no longer available",
		"error.cart_empty":             "cart is empty",
		"error.invalid_order":          "customer name or email is invalid",
		"error.order_status_invalid":   "order status transition is not allowed",
		"error.invalid_contact":        "email or message is invalid",

		"error.page_fetch_failed":       "failed to load pages",
		"error.page_not_found":          "page not found",
		"error.page_create_failed":      "failed to create page",
		"error.page_update_failed":      "failed to update page",
		"error.page_delete_failed":      "failed to delete page",
		"error.component_fetch_failed":  "failed to load components",
		"error.component_not_found":     "component not found",
		"error.component_create_failed": "failed to add component",
		"error.component_update_failed": "failed to update component",
		"error.component_delete_failed": "failed to delete component",
		"error.product_fetch_failed":    "failed to load products",
		"error.product_not_found":       "product not found",
		"error.product_create_failed":   "failed to create product",
		"error.product_update_failed":   "failed to update product",
		"error.product_delete_failed":   "failed to delete product",
		"error.order_fetch_failed":      "failed to load orders",
		"error.order_not_found":         "order not found",
		"error.order_update_failed":     "failed to update order",
		"error.contact_fetch_failed":    "failed to load messages",
		"error.contact_not_found":       "message not found",
		"error.contact_update_failed":   "failed to update message",
		"error.contact_delete_failed":   "failed to delete message",
		"error.contact_submit_failed":   "failed to submit message",
		"error.setting_fetch_failed":    "failed to load site config",
		"error.setting_update_failed":   "failed to update site config",
		"error.cart_fetch_failed":       "failed to load cart",
		"error.cart_update_failed":      "failed to update cart",
		"error.checkout_failed":         "failed to place order",
	},
	"zh-CN": {
		"error.bad_request":            "请求参数有误",
		"error.not_found":              "资源不存在",
		"error.internal":               "服务器内部错误",
		"error.rate_limited":           "请求过于频繁，请稍后再试",
		"error.rate_limit_unavailable": "限流服务暂不可用，请稍后再试",
		"error.invalid_page":           "页面标题或 slug 无效",
		"error.page_slug_taken":        "该 slug 已被其他页面占用",
		"error.invalid_component":      "组件类型或排序位无效",
		"error.invalid_product":        "商品数据无效",
		"error.invalid_cart_item":      "购物车条目无效",
		"error.product_unavailable":    "商品已下架",
		"error.cart_empty":             "购物车为空",
		"error.invalid_order":          "客户姓名或邮箱无效",
		"error.order_status_invalid":   "订单状态不允许该流转",
		"error.invalid_contact":        "邮箱或留言内容无效",

		"error.page_fetch_failed":       "页面加载失败",
		"error.page_not_found":          "页面不存在",
		"error.page_create_failed":      "页面创建失败",
		"error.page_update_failed":      "页面更新失败",
		"error.page_delete_failed":      "页面删除失败",
		"error.component_fetch_failed":  "组件加载失败",
		"error.component_not_found":     "组件不存在",
		"error.component_create_failed": "组件添加失败",
		"error.component_update_failed": "组件更新失败",
		"error.component_delete_failed": "组件删除失败",
		"error.product_fetch_failed":    "商品加载失败",
		"error.product_not_found":       "商品不存在",
		"error.product_create_failed":   "商品创建失败",
		"error.product_update_failed":   "商品更新失败",
		"error.product_delete_failed":   "商品删除失败",
		"error.order_fetch_failed":      "订单加载失败",
		"error.order_not_found":         "订单不存在",
		"error.order_update_failed":     "订单更新失败",
		"error.contact_fetch_failed":    "留言加载失败",
		"error.contact_not_found":       "留言不存在",
		"error.contact_update_failed":   "留言更新失败",
		"error.contact_delete_failed":   "留言删除失败",
		"error.contact_submit_failed":   "留言提交失败",
		"error.setting_fetch_failed":    "站点配置加载失败",
		"error.setting_update_failed":   "站点配置更新失败",
		"error.cart_fetch_failed":       "购物车加载失败",
		"error.cart_update_failed":      "购物车更新失败",
		"error.checkout_failed":         "下单失败",
	},
}

// ResolveLocale 从请求解析语言：?locale= 优先，其次 Accept-Language
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if query := normalizeLocale(c.Query("locale")); query != "" {
		return query
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		candidate := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if normalized := normalizeLocale(candidate); normalized != "" {
			return normalized
		}
	}
	return DefaultLocale
}

// T 返回 key 对应语言的文案；缺失时回退默认语言，再缺失返回 key 本身
func T(locale, key string) string {
	if messages, ok := catalog[locale]; ok {
		if text, ok := messages[key]; ok {
			return text
		}
	}
	if text, ok := catalog[DefaultLocale][key]; ok {
		return text
	}
	return key
}

func normalizeLocale(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	lower := strings.ToLower(value)
	for _, supported := range constants.SupportedLocales {
		if lower == strings.ToLower(supported) {
			return supported
		}
		// 语言前缀匹配：zh / zh-TW 落到 zh-CN，en-GB 落到 en-US
		prefix := strings.SplitN(strings.ToLower(supported), "-", 2)[0]
		if strings.HasPrefix(lower, prefix) {
			return supported
		}
	}
	return ""
}
