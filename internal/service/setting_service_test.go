package service

import (
	"fmt"
	"testing"

	"github.com/maison-next/internal/constants"
	"github.com/maison-next/internal/models"
	"github.com/maison-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newSettingTestService(t *testing.T) *SettingService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewSettingService(repository.NewSettingRepository(db))
}

func TestGetSiteConfigReturnsDefaultsWhenEmpty(t *testing.T) {
	svc := newSettingTestService(t)

	config, err := svc.GetSiteConfig()
	if err != nil {
		t.Fatalf("get site config failed: %v", err)
	}
	if config[constants.SettingFieldSiteCurrency] != constants.SiteCurrencyDefault {
		t.Fatalf("default currency want %s got %v", constants.SiteCurrencyDefault, config[constants.SettingFieldSiteCurrency])
	}
	if config[constants.SettingFieldSiteName] == "" {
		t.Fatalf("default site name should not be empty")
	}
}

func TestGetSiteConfigStoredValuesOverrideDefaults(t *testing.T) {
	svc := newSettingTestService(t)

	if _, err := svc.UpdateSiteConfig(map[string]interface{}{
		constants.SettingFieldSiteName:     "  ATELIER  ",
		constants.SettingFieldSiteCurrency: "eur",
		"unknown_field":                    "dropped",
	}); err != nil {
		t.Fatalf("update site config failed: %v", err)
	}

	config, err := svc.GetSiteConfig()
	if err != nil {
		t.Fatalf("get site config failed: %v", err)
	}
	if config[constants.SettingFieldSiteName] != "ATELIER" {
		t.Fatalf("stored site name should win (trimmed), got %v", config[constants.SettingFieldSiteName])
	}
	if _, ok := config["unknown_field"]; ok {
		t.Fatalf("unknown field should be filtered on update")
	}
	// 未覆盖的字段保留默认值
	if config[constants.SettingFieldDefaultLocale] != constants.SettingDefaultLocaleValue {
		t.Fatalf("untouched field should keep default, got %v", config[constants.SettingFieldDefaultLocale])
	}
}

func TestGetCurrencyNormalizesStoredValue(t *testing.T) {
	svc := newSettingTestService(t)

	if _, err := svc.UpdateSiteConfig(map[string]interface{}{
		constants.SettingFieldSiteCurrency: " eur ",
	}); err != nil {
		t.Fatalf("update site config failed: %v", err)
	}
	if got := svc.GetCurrency(); got != "EUR" {
		t.Fatalf("currency want EUR got %s", got)
	}
}

func TestGetCurrencyFallsBackToDefault(t *testing.T) {
	svc := newSettingTestService(t)

	if got := svc.GetCurrency(); got != constants.SiteCurrencyDefault {
		t.Fatalf("currency want %s got %s", constants.SiteCurrencyDefault, got)
	}

	var nilService *SettingService
	if got := nilService.GetCurrency(); got != constants.SiteCurrencyDefault {
		t.Fatalf("nil service currency want %s got %s", constants.SiteCurrencyDefault, got)
	}
}
