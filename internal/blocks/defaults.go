package blocks

import (
	"github.com/maison-next/internal/constants"
	"github.com/maison-next/internal/models"
)

// typeDefaults 各组件类型的默认配置（该表是 schema 演进的唯一入口：
// 新增字段后，历史组件在下次读取时通过合并自动补齐，无需迁移存量数据）
var typeDefaults = map[string]map[string]string{
	constants.ComponentTypeNavigation: {
		"backgroundColor": "#ffffff",
		"logoText":        "LUXURY BRAND",
		"logoSize":        "28px",
		"logoColor":       "#000000",
		"linkColor":       "#111111",
		"linkSize":        "13px",
		"linkWeight":      "400",
	},
	constants.ComponentTypeHero: {
		"backgroundColor":    "#f5f5f5",
		"title":              "ELEGANCE REDEFINED",
		"titleSize":          "64px",
		"titleColor":         "#000000",
		"subtitle":           "The new collection has arrived.",
		"subtitleSize":       "18px",
		"subtitleColor":      "#444444",
		"ctaText":            "DISCOVER MORE",
		"ctaBackgroundColor": "#000000",
		"ctaTextColor":       "#ffffff",
		"overlayOpacity":     "0",
	},
	constants.ComponentTypeProductGrid: {
		"backgroundColor": "#ffffff",
		"title":           "LATEST ARRIVALS",
		"titleSize":       "32px",
		"titleColor":      "#000000",
	},
	constants.ComponentTypeContactForm: {
		"backgroundColor":    "#ffffff",
		"title":              "CONTACT US",
		"titleSize":          "32px",
		"submitButtonText":   "SEND MESSAGE",
		"emailPlaceholder":   "EMAIL ADDRESS",
		"messagePlaceholder": "YOUR MESSAGE",
	},
	constants.ComponentTypeCart: {
		"backgroundColor": "#ffffff",
		"title":           "SHOPPING BAG",
		"emptyText":       "Your shopping bag is empty.",
	},
	constants.ComponentTypeFooter: {
		"backgroundColor": "#000000",
		"textColor":       "#ffffff",
		"copyrightText":   "© 2024 LUXURY BRAND. ALL RIGHTS RESERVED.",
	},
}

// variantPresets 类型下的命名预设，叠加在默认配置之上
var variantPresets = map[string]map[string]map[string]string{
	constants.ComponentTypeHero: {
		"split_left": {
			"textAlign":      "left",
			"overlayOpacity": "0.35",
		},
		"minimal": {
			"ctaText":        "",
			"overlayOpacity": "0",
		},
	},
	constants.ComponentTypeNavigation: {
		"centered": {
			"linkWeight": "500",
		},
	},
	constants.ComponentTypeProductGrid: {
		"two_column": {
			"columns": "2",
		},
	},
}

// Types 返回受支持的组件类型（按画布工具栏顺序）
func Types() []string {
	return []string{
		constants.ComponentTypeNavigation,
		constants.ComponentTypeHero,
		constants.ComponentTypeProductGrid,
		constants.ComponentTypeContactForm,
		constants.ComponentTypeCart,
		constants.ComponentTypeFooter,
	}
}

// IsValidType 判断组件类型是否受支持
func IsValidType(componentType string) bool {
	_, ok := typeDefaults[componentType]
	return ok
}

// DefaultsFor 返回类型的默认配置副本；未知类型返回空映射，永不失败
func DefaultsFor(componentType string) map[string]string {
	defaults, ok := typeDefaults[componentType]
	if !ok {
		return map[string]string{}
	}
	result := make(map[string]string, len(defaults))
	for key, value := range defaults {
		result[key] = value
	}
	return result
}

// VariantsFor 返回类型下可用的变体名（总是包含 default）
func VariantsFor(componentType string) []string {
	names := []string{constants.ComponentVariantDefault}
	for name := range variantPresets[componentType] {
		names = append(names, name)
	}
	return names
}

// InstanceConfig 构建新组件实例的初始配置：
// 默认值 ∪ 变体预设 ∪ 调用方覆盖，最后盖上 variant 标记（后写者胜）
func InstanceConfig(componentType, variant string, overrides map[string]interface{}) models.JSON {
	if variant == "" {
		variant = constants.ComponentVariantDefault
	}
	config := models.JSON{}
	for key, value := range typeDefaults[componentType] {
		config[key] = value
	}
	for key, value := range variantPresets[componentType][variant] {
		config[key] = value
	}
	for key, value := range overrides {
		config[key] = value
	}
	config[constants.ComponentConfigFieldVariant] = variant
	return config
}
