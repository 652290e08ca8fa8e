package router

import (
	"fmt"
	"strings"

	"github.com/maison-next/internal/cache"
	"github.com/maison-next/internal/config"
	adminhandlers "github.com/maison-next/internal/http/handlers/admin"
	publichandlers "github.com/maison-next/internal/http/handlers/public"
	"github.com/maison-next/internal/logger"
	"github.com/maison-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "mn"
	}
	redisClient := cache.Client()
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.SubmitRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.SubmitRateLimit.MaxAttempts,
		MessageKey:    "error.rate_limited",
	}
	contactRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:contact", redisPrefix),
		WindowSeconds: cfg.Security.SubmitRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.SubmitRateLimit.MaxAttempts,
		MessageKey:    "error.rate_limited",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（上传的图片）
	r.Static("/uploads", "./uploads")

	// API 路由组
	api := r.Group("/api")
	{
		// 前台渲染接口
		api.GET("/config", publicHandler.GetSiteConfig)
		api.GET("/pages", publicHandler.GetPages)
		api.GET("/pages/home", publicHandler.GetHomePage)
		api.GET("/pages/:slug", publicHandler.GetPageBySlug)
		api.GET("/products", publicHandler.GetProducts)
		api.GET("/products/:id", publicHandler.GetProduct)

		// 游客购物车（X-Cart-Token 标识）
		api.GET("/cart", publicHandler.GetCart)
		api.POST("/cart/items", publicHandler.AddCartItem)
		api.PUT("/cart/items", publicHandler.UpdateCartItem)
		api.POST("/cart/items/remove", publicHandler.RemoveCartItem)
		api.DELETE("/cart", publicHandler.ClearCart)

		// 结算与留言（提交类接口走限流）
		api.POST("/checkout", RateLimitMiddleware(redisClient, checkoutRule, KeyByIPAndJSONField("email")), publicHandler.Checkout)
		api.GET("/orders/by-order-no/:order_no", publicHandler.GetOrderByNo)
		api.POST("/contact", RateLimitMiddleware(redisClient, contactRule, KeyByIPAndJSONField("email")), publicHandler.SubmitContact)

		// 管理端接口
		admin := api.Group("/admin")
		{
			// 页面管理
			admin.GET("/pages", adminHandler.GetAdminPages)
			admin.GET("/pages/:id", adminHandler.GetAdminPage)
			admin.POST("/pages", adminHandler.CreatePage)
			admin.PUT("/pages/:id", adminHandler.UpdatePage)
			admin.DELETE("/pages/:id", adminHandler.DeletePage)

			// 组件管理
			admin.GET("/component-types", adminHandler.GetComponentTypes)
			admin.POST("/pages/:id/components", adminHandler.AddComponent)
			admin.PUT("/pages/:id/components/reorder", adminHandler.ReorderComponents)
			admin.PUT("/components/:component_id/config", adminHandler.UpdateComponentConfig)
			admin.PUT("/components/:component_id/active", adminHandler.SetComponentActive)
			admin.DELETE("/components/:component_id", adminHandler.DeleteComponent)

			// 商品管理
			admin.GET("/products", adminHandler.GetAdminProducts)
			admin.GET("/products/:id", adminHandler.GetAdminProduct)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)

			// 订单管理
			admin.GET("/orders", adminHandler.GetAdminOrders)
			admin.GET("/orders/:id", adminHandler.GetAdminOrder)
			admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)

			// 留言管理
			admin.GET("/contact-messages", adminHandler.GetAdminContactMessages)
			admin.PUT("/contact-messages/:id/close", adminHandler.CloseContactMessage)
			admin.DELETE("/contact-messages/:id", adminHandler.DeleteContactMessage)

			// 站点设置
			admin.GET("/settings/site", adminHandler.GetAdminSiteConfig)
			admin.PUT("/settings/site", adminHandler.UpdateAdminSiteConfig)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
