package service

import (
	"fmt"
	"testing"

	"github.com/maison-next/internal/models"
	"github.com/maison-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// 每个测试用独立的命名内存库，页面回退选择依赖整表状态
func newPageTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Page{}, &models.PageComponent{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func newPageTestService(t *testing.T) *PageService {
	t.Helper()
	db := newPageTestDB(t)
	return NewPageService(repository.NewPageRepository(db), repository.NewPageComponentRepository(db))
}

func TestDeriveSlug(t *testing.T) {
	cases := map[string]string{
		"Summer Sale!! 2024":  "summer-sale-2024",
		"Home":                "home",
		"  About   Us  ":      "about-us",
		"FAQ & Returns":       "faq-returns",
		"Nouveautés":          "nouveaut-s",
		"---":                 "",
		"2024/25 Lookbook  #": "2024-25-lookbook",
	}
	for title, expected := range cases {
		if got := DeriveSlug(title); got != expected {
			t.Fatalf("DeriveSlug(%q) want %q got %q", title, expected, got)
		}
	}
}

func TestCreatePageRequiresTitle(t *testing.T) {
	svc := newPageTestService(t)
	if _, err := svc.Create(PageInput{Title: "   "}); err != ErrInvalidPage {
		t.Fatalf("empty title want ErrInvalidPage got %v", err)
	}
	if _, err := svc.Create(PageInput{Title: "!!!"}); err != ErrInvalidPage {
		t.Fatalf("title with no slug material want ErrInvalidPage got %v", err)
	}
}

func TestCreatePageDerivesSlugAndRejectsDuplicate(t *testing.T) {
	svc := newPageTestService(t)

	page, err := svc.Create(PageInput{Title: "Summer Sale!! 2024"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if page.Slug != "summer-sale-2024" {
		t.Fatalf("slug want summer-sale-2024 got %q", page.Slug)
	}

	if _, err := svc.Create(PageInput{Title: "Summer SALE 2024"}); err != ErrPageSlugTaken {
		t.Fatalf("duplicate slug want ErrPageSlugTaken got %v", err)
	}
}

func TestDeleteFallbackPrefersHomePage(t *testing.T) {
	svc := newPageTestService(t)

	doomed, err := svc.Create(PageInput{Title: "Doomed"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(PageInput{Title: "Lookbook"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	isHome := true
	home, err := svc.Create(PageInput{Title: "Home", IsHome: &isHome})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	fallback, err := svc.Delete(doomed.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if fallback == nil || fallback.ID != home.ID {
		t.Fatalf("fallback want home page got %+v", fallback)
	}
}

func TestDeleteFallbackFirstRemainingWhenNoHome(t *testing.T) {
	svc := newPageTestService(t)

	doomed, err := svc.Create(PageInput{Title: "Doomed"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	first, err := svc.Create(PageInput{Title: "First Remaining"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(PageInput{Title: "Second Remaining"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	fallback, err := svc.Delete(doomed.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if fallback == nil || fallback.ID != first.ID {
		t.Fatalf("fallback want first remaining got %+v", fallback)
	}
}

func TestDeleteFallbackNilWhenNoPagesLeft(t *testing.T) {
	svc := newPageTestService(t)

	only, err := svc.Create(PageInput{Title: "Only"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	fallback, err := svc.Delete(only.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if fallback != nil {
		t.Fatalf("fallback want nil got %+v", fallback)
	}
}

func TestDeletePageRemovesComponents(t *testing.T) {
	db := newPageTestDB(t)
	componentRepo := repository.NewPageComponentRepository(db)
	svc := NewPageService(repository.NewPageRepository(db), componentRepo)

	page, err := svc.Create(PageInput{Title: "With Components"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	component := &models.PageComponent{
		PageID:     page.ID,
		Type:       "hero",
		ConfigJSON: models.JSON{"variant": "default"},
		IsActive:   true,
	}
	if err := componentRepo.Create(component); err != nil {
		t.Fatalf("create component failed: %v", err)
	}

	if _, err := svc.Delete(page.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	leftovers, err := componentRepo.ListByPage(page.ID, false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(leftovers) != 0 {
		t.Fatalf("components want 0 got %d", len(leftovers))
	}
}
