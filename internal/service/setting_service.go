package service

import (
	"context"
	"strings"
	"time"

	"github.com/maison-next/internal/cache"
	"github.com/maison-next/internal/constants"
	"github.com/maison-next/internal/logger"
	"github.com/maison-next/internal/models"
	"github.com/maison-next/internal/repository"
)

const (
	siteConfigCacheKey = "setting:site_config"
	siteConfigCacheTTL = 60 * time.Second
)

// SettingService 站点设置业务服务
type SettingService struct {
	repo repository.SettingRepository
}

// NewSettingService 创建设置服务
func NewSettingService(repo repository.SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// SiteConfigDefaults 站点配置默认值
func SiteConfigDefaults() map[string]interface{} {
	return map[string]interface{}{
		constants.SettingFieldSiteName:       "MAISON",
		constants.SettingFieldSiteCurrency:   constants.SiteCurrencyDefault,
		constants.SettingFieldDefaultLocale:  constants.SettingDefaultLocaleValue,
		constants.SettingFieldContactChannel: "",
	}
}

// GetSiteConfig 获取站点配置（存量值覆盖默认值），带短 TTL 缓存
func (s *SettingService) GetSiteConfig() (map[string]interface{}, error) {
	ctx := context.Background()
	cached := map[string]interface{}{}
	if hit, err := cache.GetJSON(ctx, siteConfigCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	data := SiteConfigDefaults()

	setting, err := s.repo.GetByKey(constants.SettingKeySiteConfig)
	if err != nil {
		return nil, err
	}
	if setting != nil {
		for k, v := range setting.ValueJSON {
			data[k] = v
		}
	}

	if err := cache.SetJSON(ctx, siteConfigCacheKey, data, siteConfigCacheTTL); err != nil {
		logger.Debugw("site_config_cache_set_failed", "error", err)
	}
	return data, nil
}

// GetCurrency 获取站点货币代码
func (s *SettingService) GetCurrency() string {
	if s == nil {
		return constants.SiteCurrencyDefault
	}
	config, err := s.GetSiteConfig()
	if err != nil {
		return constants.SiteCurrencyDefault
	}
	if raw, ok := config[constants.SettingFieldSiteCurrency]; ok {
		if currency, ok := raw.(string); ok && strings.TrimSpace(currency) != "" {
			return strings.ToUpper(strings.TrimSpace(currency))
		}
	}
	return constants.SiteCurrencyDefault
}

// UpdateSiteConfig 更新站点配置，只接收已知字段
func (s *SettingService) UpdateSiteConfig(value map[string]interface{}) (models.JSON, error) {
	known := SiteConfigDefaults()
	normalized := models.JSON{}
	for key, raw := range value {
		if _, ok := known[key]; !ok {
			continue
		}
		if text, ok := raw.(string); ok {
			normalized[key] = strings.TrimSpace(text)
			continue
		}
		normalized[key] = raw
	}

	setting, err := s.repo.Upsert(constants.SettingKeySiteConfig, normalized)
	if err != nil {
		return nil, err
	}
	// 更新后失效缓存，下一次读取回源合并默认值
	if err := cache.Del(context.Background(), siteConfigCacheKey); err != nil {
		logger.Warnw("site_config_cache_invalidate_failed", "error", err)
	}
	return setting.ValueJSON, nil
}
