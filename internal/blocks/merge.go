package blocks

import "github.com/maison-next/internal/models"

// MergeConfig 将存量配置叠加到类型当前默认配置之上（存量值优先）。
// 默认集合里后加的字段由此对历史组件自动生效；合并是幂等的。
func MergeConfig(componentType string, stored models.JSON) models.JSON {
	merged := models.JSON{}
	for key, value := range typeDefaults[componentType] {
		merged[key] = value
	}
	for key, value := range stored {
		merged[key] = value
	}
	return merged
}

// RecognizedKeys 返回类型已知的配置字段（含 variant），供后台编辑表单
// 过滤调用方随意写入的字段
func RecognizedKeys(componentType string) map[string]bool {
	keys := map[string]bool{"variant": true}
	for key := range typeDefaults[componentType] {
		keys[key] = true
	}
	for _, preset := range variantPresets[componentType] {
		for key := range preset {
			keys[key] = true
		}
	}
	return keys
}
