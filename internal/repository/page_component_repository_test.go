package repository

import (
	"testing"

	"github.com/maison-next/internal/constants"
	"github.com/maison-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupPageComponentRepositoryTest(t *testing.T) (*GormPageComponentRepository, *GormPageRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Page{}, &models.PageComponent{}); err != nil {
		t.Fatalf("migrate page/component failed: %v", err)
	}
	return NewPageComponentRepository(db), NewPageRepository(db)
}

func createTestPage(t *testing.T, pages *GormPageRepository, title, slug string) *models.Page {
	t.Helper()
	page := &models.Page{Title: title, Slug: slug}
	if err := pages.Create(page); err != nil {
		t.Fatalf("create page failed: %v", err)
	}
	return page
}

func createTestComponent(t *testing.T, repo *GormPageComponentRepository, pageID uint, position int, isActive bool) *models.PageComponent {
	t.Helper()
	component := &models.PageComponent{
		PageID:     pageID,
		Type:       constants.ComponentTypeHero,
		ConfigJSON: models.JSON{constants.ComponentConfigFieldVariant: constants.ComponentVariantDefault},
		Position:   position,
		IsActive:   isActive,
	}
	if err := repo.Create(component); err != nil {
		t.Fatalf("create component failed: %v", err)
	}
	return component
}

func TestMaxPositionEmptyPage(t *testing.T) {
	repo, pages := setupPageComponentRepositoryTest(t)
	page := createTestPage(t, pages, "Empty", "max-position-empty")

	max, exists, err := repo.MaxPosition(page.ID)
	if err != nil {
		t.Fatalf("max position failed: %v", err)
	}
	if exists {
		t.Fatalf("empty page must report no components")
	}
	if max != 0 {
		t.Fatalf("max want 0 got %d", max)
	}
}

func TestMaxPositionWithGaps(t *testing.T) {
	repo, pages := setupPageComponentRepositoryTest(t)
	page := createTestPage(t, pages, "Gaps", "max-position-gaps")
	for _, position := range []int{0, 2, 5} {
		createTestComponent(t, repo, page.ID, position, true)
	}

	max, exists, err := repo.MaxPosition(page.ID)
	if err != nil {
		t.Fatalf("max position failed: %v", err)
	}
	if !exists {
		t.Fatalf("page has components, exists want true")
	}
	if max != 5 {
		t.Fatalf("max want 5 got %d", max)
	}
}

func TestListByPageOrdersByPosition(t *testing.T) {
	repo, pages := setupPageComponentRepositoryTest(t)
	page := createTestPage(t, pages, "Ordered", "list-ordered")
	third := createTestComponent(t, repo, page.ID, 5, true)
	first := createTestComponent(t, repo, page.ID, 0, true)
	second := createTestComponent(t, repo, page.ID, 2, false)

	all, err := repo.ListByPage(page.ID, false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("list count want 3 got %d", len(all))
	}
	if all[0].ID != first.ID || all[1].ID != second.ID || all[2].ID != third.ID {
		t.Fatalf("list not ordered by position: %d,%d,%d", all[0].ID, all[1].ID, all[2].ID)
	}

	active, err := repo.ListByPage(page.ID, true)
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("active count want 2 got %d", len(active))
	}
	for _, component := range active {
		if !component.IsActive {
			t.Fatalf("inactive component leaked into active list: id=%d", component.ID)
		}
	}
}

func TestUpdateConfigAndPosition(t *testing.T) {
	repo, pages := setupPageComponentRepositoryTest(t)
	page := createTestPage(t, pages, "Updates", "component-updates")
	component := createTestComponent(t, repo, page.ID, 0, true)

	if err := repo.UpdateConfig(component.ID, models.JSON{"title": "HELLO", "variant": "minimal"}); err != nil {
		t.Fatalf("update config failed: %v", err)
	}
	if err := repo.UpdatePosition(component.ID, 7); err != nil {
		t.Fatalf("update position failed: %v", err)
	}

	got, err := repo.GetByID(component.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got == nil {
		t.Fatalf("component disappeared")
	}
	if got.ConfigJSON["title"] != "HELLO" {
		t.Fatalf("config not persisted: %v", got.ConfigJSON)
	}
	if got.Position != 7 {
		t.Fatalf("position want 7 got %d", got.Position)
	}
}

func TestDeleteLeavesPositionGap(t *testing.T) {
	repo, pages := setupPageComponentRepositoryTest(t)
	page := createTestPage(t, pages, "Holes", "delete-gap")
	var ids []uint
	for _, position := range []int{0, 1, 2} {
		ids = append(ids, createTestComponent(t, repo, page.ID, position, true).ID)
	}

	if err := repo.Delete(ids[1]); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	remaining, err := repo.ListByPage(page.ID, false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("remaining count want 2 got %d", len(remaining))
	}
	// 删除不回收剩余组件的排序位，空洞保留
	if remaining[0].Position != 0 || remaining[1].Position != 2 {
		t.Fatalf("positions want 0,2 got %d,%d", remaining[0].Position, remaining[1].Position)
	}
}
