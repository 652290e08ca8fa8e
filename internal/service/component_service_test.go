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

func newComponentTestService(t *testing.T) (*ComponentService, *models.Page, repository.PageComponentRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Page{}, &models.PageComponent{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	pageRepo := repository.NewPageRepository(db)
	componentRepo := repository.NewPageComponentRepository(db)
	page := &models.Page{Title: "Canvas", Slug: "canvas"}
	if err := pageRepo.Create(page); err != nil {
		t.Fatalf("create page failed: %v", err)
	}
	return NewComponentService(componentRepo, pageRepo), page, componentRepo
}

func seedComponentAt(t *testing.T, repo repository.PageComponentRepository, pageID uint, position int) *models.PageComponent {
	t.Helper()
	component := &models.PageComponent{
		PageID:     pageID,
		Type:       constants.ComponentTypeHero,
		ConfigJSON: models.JSON{constants.ComponentConfigFieldVariant: constants.ComponentVariantDefault},
		Position:   position,
		IsActive:   true,
	}
	if err := repo.Create(component); err != nil {
		t.Fatalf("seed component failed: %v", err)
	}
	return component
}

func TestAddComponentEmptyPageStartsAtZero(t *testing.T) {
	svc, page, _ := newComponentTestService(t)

	component, err := svc.Add(AddComponentInput{PageID: page.ID, Type: constants.ComponentTypeHero})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if component.Position != 0 {
		t.Fatalf("position want 0 got %d", component.Position)
	}
}

func TestAddComponentAppendsAfterMaxPosition(t *testing.T) {
	svc, page, repo := newComponentTestService(t)
	// 历史删除留下空洞：0,2,5。追加必须落在 6，而不是补洞
	for _, position := range []int{0, 2, 5} {
		seedComponentAt(t, repo, page.ID, position)
	}

	component, err := svc.Add(AddComponentInput{PageID: page.ID, Type: constants.ComponentTypeFooter})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if component.Position != 6 {
		t.Fatalf("position want 6 got %d", component.Position)
	}
}

func TestAddComponentRejectsUnknownType(t *testing.T) {
	svc, page, _ := newComponentTestService(t)
	if _, err := svc.Add(AddComponentInput{PageID: page.ID, Type: "carousel"}); err != ErrInvalidComponent {
		t.Fatalf("unknown type want ErrInvalidComponent got %v", err)
	}
}

func TestListForPageSortedWithMergedDefaults(t *testing.T) {
	svc, page, repo := newComponentTestService(t)
	seedComponentAt(t, repo, page.ID, 5)
	seedComponentAt(t, repo, page.ID, 0)
	seedComponentAt(t, repo, page.ID, 2)

	components, err := svc.ListForPage(page.ID, false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(components) != 3 {
		t.Fatalf("count want 3 got %d", len(components))
	}

	seen := map[int]bool{}
	previous := -1
	for _, component := range components {
		if component.Position <= previous {
			t.Fatalf("list not ascending by position: %d after %d", component.Position, previous)
		}
		if seen[component.Position] {
			t.Fatalf("duplicate position %d", component.Position)
		}
		seen[component.Position] = true
		previous = component.Position

		// 只存了 variant 的组件，读取时必须补齐类型默认字段
		if component.ConfigJSON["title"] != "ELEGANCE REDEFINED" {
			t.Fatalf("merged config missing default title: %v", component.ConfigJSON)
		}
		if component.ConfigJSON["variant"] != "default" {
			t.Fatalf("stored variant must survive merge: %v", component.ConfigJSON)
		}
	}
}

func TestReorderPersistsContiguousPositions(t *testing.T) {
	svc, page, repo := newComponentTestService(t)
	var seeded []*models.PageComponent
	for _, position := range []int{0, 2, 5} {
		seeded = append(seeded, seedComponentAt(t, repo, page.ID, position))
	}

	result, err := svc.Reorder(ReorderInput{PageID: page.ID, FromIndex: 2, ToIndex: 0})
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("count want 3 got %d", len(result))
	}
	if result[0].ID != seeded[2].ID {
		t.Fatalf("moved component want id=%d at front got id=%d", seeded[2].ID, result[0].ID)
	}

	persisted, err := repo.ListByPage(page.ID, false)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	for index, component := range persisted {
		if component.Position != index {
			t.Fatalf("persisted positions must be contiguous, index %d got %d", index, component.Position)
		}
	}
}

func TestReorderSameIndexDoesNotWrite(t *testing.T) {
	svc, page, repo := newComponentTestService(t)
	for _, position := range []int{0, 2, 5} {
		seedComponentAt(t, repo, page.ID, position)
	}

	result, err := svc.Reorder(ReorderInput{PageID: page.ID, FromIndex: 1, ToIndex: 1})
	if err != nil {
		t.Fatalf("reorder failed: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("count want 3 got %d", len(result))
	}

	persisted, err := repo.ListByPage(page.ID, false)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	// 同位拖拽不落库，历史空洞原样保留
	expected := []int{0, 2, 5}
	for index, component := range persisted {
		if component.Position != expected[index] {
			t.Fatalf("position want %d got %d", expected[index], component.Position)
		}
	}
}

func TestReorderOutOfRangeIsRejected(t *testing.T) {
	svc, page, repo := newComponentTestService(t)
	seedComponentAt(t, repo, page.ID, 0)

	if _, err := svc.Reorder(ReorderInput{PageID: page.ID, FromIndex: 0, ToIndex: 5}); err != ErrInvalidComponent {
		t.Fatalf("out of range want ErrInvalidComponent got %v", err)
	}
}

func TestRemoveComponentLeavesGap(t *testing.T) {
	svc, page, repo := newComponentTestService(t)
	var seeded []*models.PageComponent
	for _, position := range []int{0, 1, 2} {
		seeded = append(seeded, seedComponentAt(t, repo, page.ID, position))
	}

	if err := svc.Remove(seeded[1].ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	persisted, err := repo.ListByPage(page.ID, false)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(persisted) != 2 {
		t.Fatalf("count want 2 got %d", len(persisted))
	}
	if persisted[0].Position != 0 || persisted[1].Position != 2 {
		t.Fatalf("positions want 0,2 got %d,%d", persisted[0].Position, persisted[1].Position)
	}
}

func TestUpdateConfigFiltersUnknownKeysAndKeepsVariant(t *testing.T) {
	svc, page, repo := newComponentTestService(t)
	component := seedComponentAt(t, repo, page.ID, 0)

	updated, err := svc.UpdateConfig(component.ID, map[string]interface{}{
		"title":    "NEW DROP",
		"nonsense": "ignored",
	})
	if err != nil {
		t.Fatalf("update config failed: %v", err)
	}
	if updated.ConfigJSON["title"] != "NEW DROP" {
		t.Fatalf("title want NEW DROP got %v", updated.ConfigJSON["title"])
	}
	if updated.ConfigJSON["variant"] != "default" {
		t.Fatalf("variant must be preserved, got %v", updated.ConfigJSON["variant"])
	}

	stored, err := repo.GetByID(component.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if _, ok := stored.ConfigJSON["nonsense"]; ok {
		t.Fatalf("unknown key must not be persisted: %v", stored.ConfigJSON)
	}
	if stored.ConfigJSON["title"] != "NEW DROP" {
		t.Fatalf("stored title want NEW DROP got %v", stored.ConfigJSON["title"])
	}
}
