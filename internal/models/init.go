package models

import (
	"github.com/maison-next/internal/constants"
	"github.com/maison-next/internal/logger"
)

// InitDefaultHomePage 初始化默认首页
// 空库启动时建一张 slug 为 home 的首页，并按画布默认顺序挂上起始组件。
// 组件只落 variant 标记，其余字段读取时由类型默认配置合并补齐。
func InitDefaultHomePage() error {
	var count int64
	DB.Model(&Page{}).Count(&count)
	if count > 0 {
		return nil
	}

	page := Page{
		Title:  "Home",
		Slug:   "home",
		IsHome: true,
	}
	if err := DB.Create(&page).Error; err != nil {
		return err
	}

	starterTypes := []string{
		constants.ComponentTypeNavigation,
		constants.ComponentTypeHero,
		constants.ComponentTypeProductGrid,
		constants.ComponentTypeFooter,
	}
	for position, componentType := range starterTypes {
		component := PageComponent{
			PageID:     page.ID,
			Type:       componentType,
			ConfigJSON: JSON{constants.ComponentConfigFieldVariant: constants.ComponentVariantDefault},
			Position:   position,
			IsActive:   true,
		}
		if err := DB.Create(&component).Error; err != nil {
			logger.Warnw("default_home_component_create_failed", "type", componentType, "error", err)
			return err
		}
	}

	logger.Infow("default_home_page_created", "page_id", page.ID, "slug", page.Slug, "components", len(starterTypes))
	return nil
}
