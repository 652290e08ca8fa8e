package main

import (
	"fmt"

	"github.com/maison-next/internal/blocks"
	"github.com/maison-next/internal/config"
	"github.com/maison-next/internal/constants"
	"github.com/maison-next/internal/logger"
	"github.com/maison-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 演示首页：六种组件按顺序铺满一页
	var homePage models.Page
	if err := models.DB.Where("slug = ?", "home").First(&homePage).Error; err != nil {
		homePage = models.Page{
			Title:  "Home",
			Slug:   "home",
			IsHome: true,
		}
		if err := models.DB.Create(&homePage).Error; err != nil {
			stdLog.Fatalf("Failed to create home page: %v", err)
		}
		stdLog.Printf("Created page: %s", homePage.Slug)
	} else {
		stdLog.Printf("Page already exists: %s", homePage.Slug)
	}

	componentPlans := []struct {
		Type      string
		Variant   string
		Overrides map[string]interface{}
	}{
		{Type: constants.ComponentTypeNavigation, Variant: "default", Overrides: map[string]interface{}{
			"brandName": "MAISON",
		}},
		{Type: constants.ComponentTypeHero, Variant: "split_left", Overrides: map[string]interface{}{
			"title":    "WINTER ESSENTIALS",
			"subtitle": "Tailored pieces for the new season",
		}},
		{Type: constants.ComponentTypeProductGrid, Variant: "default", Overrides: map[string]interface{}{
			"title": "NEW ARRIVALS",
		}},
		{Type: constants.ComponentTypeContactForm, Variant: "default", Overrides: nil},
		{Type: constants.ComponentTypeCart, Variant: "default", Overrides: nil},
		{Type: constants.ComponentTypeFooter, Variant: "default", Overrides: map[string]interface{}{
			"text": "© MAISON. All rights reserved.",
		}},
	}

	var existingCount int64
	models.DB.Model(&models.PageComponent{}).Where("page_id = ?", homePage.ID).Count(&existingCount)
	if existingCount > 0 {
		stdLog.Printf("Home page already has %d components, skip component seed", existingCount)
	} else {
		for position, plan := range componentPlans {
			component := models.PageComponent{
				PageID:     homePage.ID,
				Type:       plan.Type,
				ConfigJSON: blocks.InstanceConfig(plan.Type, plan.Variant, plan.Overrides),
				Position:   position,
				IsActive:   true,
			}
			if err := models.DB.Create(&component).Error; err != nil {
				stdLog.Printf("Failed to create component %s: %v", plan.Type, err)
			} else {
				stdLog.Printf("Created component: %s at position %d", plan.Type, position)
			}
		}
	}

	// 演示商品
	products := []models.Product{
		{
			Title:       "Wool Overcoat",
			Description: "Double-breasted overcoat in brushed virgin wool, fully lined.",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(2499.00)),
			Category:    "outerwear",
			Stock:       12,
			ThemeColor:  "#2b2b2b",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=800",
			}),
			Colors:   models.StringArray([]string{"Charcoal", "Camel"}),
			Sizes:    models.StringArray([]string{"S", "M", "L", "XL"}),
			IsActive: true,
		},
		{
			Title:       "Silk Midi Dress",
			Description: "Bias-cut midi dress in washed silk with a draped neckline.",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(1899.00)),
			Category:    "dresses",
			Stock:       8,
			ThemeColor:  "#7c6a58",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=800",
			}),
			Colors:   models.StringArray([]string{"Ivory", "Sage"}),
			Sizes:    models.StringArray([]string{"XS", "S", "M", "L"}),
			IsActive: true,
		},
		{
			Title:       "Leather Tote",
			Description: "Structured tote in vegetable-tanned leather with suede lining.",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(3299.00)),
			Category:    "accessories",
			Stock:       5,
			ThemeColor:  "#4a3426",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=800",
			}),
			Colors:   models.StringArray([]string{"Tan", "Black"}),
			Sizes:    models.StringArray([]string{"One Size"}),
			IsActive: true,
		},
		{
			Title:       "Cashmere Crewneck",
			Description: "Two-ply cashmere crewneck knitted in a relaxed fit.",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(1599.00)),
			Category:    "knitwear",
			Stock:       20,
			ThemeColor:  "#b5a795",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1576871337622-98d48d1cf531?w=800",
			}),
			Colors:   models.StringArray([]string{"Oatmeal", "Navy", "Black"}),
			Sizes:    models.StringArray([]string{"S", "M", "L"}),
			IsActive: true,
		},
		{
			Title:       "Archive Trench (Retired)",
			Description: "Previous-season trench kept for order history demos.",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(2099.00)),
			Category:    "outerwear",
			Stock:       0,
			ThemeColor:  "#8a7f6a",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1591047139829-d91aecb6caea?w=800",
			}),
			Colors:   models.StringArray([]string{"Stone"}),
			Sizes:    models.StringArray([]string{"M", "L"}),
			IsActive: false,
		},
	}

	for _, prod := range products {
		var existing models.Product
		if err := models.DB.Where("title = ?", prod.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Title, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Title)
			}
		} else {
			existing.Description = prod.Description
			existing.PriceAmount = prod.PriceAmount
			existing.Category = prod.Category
			existing.Stock = prod.Stock
			existing.ThemeColor = prod.ThemeColor
			existing.Images = prod.Images
			existing.Colors = prod.Colors
			existing.Sizes = prod.Sizes
			existing.IsActive = prod.IsActive
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Title, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Title)
			}
		}
	}

	// 站点配置
	configData := map[string]interface{}{
		constants.SettingFieldSiteName:       "MAISON",
		constants.SettingFieldSiteCurrency:   constants.SiteCurrencyDefault,
		constants.SettingFieldDefaultLocale:  constants.SettingDefaultLocaleValue,
		constants.SettingFieldContactChannel: "hello@maison.example",
	}

	var setting models.Setting
	if err := models.DB.Where("key = ?", constants.SettingKeySiteConfig).First(&setting).Error; err != nil {
		setting = models.Setting{
			Key:       constants.SettingKeySiteConfig,
			ValueJSON: models.JSON(configData),
		}
		if err := models.DB.Create(&setting).Error; err != nil {
			stdLog.Printf("Failed to create setting: %v", err)
		} else {
			stdLog.Println("Created site config")
		}
	} else {
		setting.ValueJSON = models.JSON(configData)
		if err := models.DB.Save(&setting).Error; err != nil {
			stdLog.Printf("Failed to update setting: %v", err)
		} else {
			stdLog.Println("Updated site config")
		}
	}

	fmt.Println("\n✅ Demo data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 1 Home page with 6 components")
	fmt.Println("- 5 Products (1 retired)")
	fmt.Println("- Site configuration")
}
