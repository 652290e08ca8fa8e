package shared

import (
	"strconv"

	"github.com/maison-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ParseUintParam 解析路径参数为 uint，失败时统一返回错误响应。
func ParseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		RespondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return 0, false
	}
	return uint(value), true
}

// ParseQueryInt 解析查询参数为 int，缺省或非法时返回默认值。
func ParseQueryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
