package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/maison-next/internal/models"
	"github.com/maison-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newCartTestService(t *testing.T) (*CartService, *MemoryCartStore, repository.ProductRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	store := NewMemoryCartStore()
	productRepo := repository.NewProductRepository(db)
	return NewCartService(store, productRepo), store, productRepo
}

func seedCartProduct(t *testing.T, repo repository.ProductRepository, title string, price int64, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Title:       title,
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Colors:      models.StringArray{"Black", "White"},
		Sizes:       models.StringArray{"S", "M", "L"},
		IsActive:    active,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

func TestAddItemMergesSameIdentity(t *testing.T) {
	svc, _, productRepo := newCartTestService(t)
	product := seedCartProduct(t, productRepo, "Wool Coat", 100, true)
	ctx := context.Background()
	token := svc.EnsureToken("")

	if _, err := svc.AddItem(ctx, token, AddCartItemInput{ProductID: product.ID, Color: "Black", Size: "M", Quantity: 1}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	view, err := svc.AddItem(ctx, token, AddCartItemInput{ProductID: product.ID, Color: "Black", Size: "M", Quantity: 2})
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if len(view.Items) != 1 {
		t.Fatalf("same identity must merge into one line, got %d", len(view.Items))
	}
	if view.Items[0].Quantity != 3 {
		t.Fatalf("quantity want 3 got %d", view.Items[0].Quantity)
	}
}

func TestAddItemDifferentSizeCreatesSeparateLine(t *testing.T) {
	svc, _, productRepo := newCartTestService(t)
	product := seedCartProduct(t, productRepo, "Wool Coat", 100, true)
	ctx := context.Background()
	token := svc.EnsureToken("")

	if _, err := svc.AddItem(ctx, token, AddCartItemInput{ProductID: product.ID, Color: "Black", Size: "M", Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	view, err := svc.AddItem(ctx, token, AddCartItemInput{ProductID: product.ID, Color: "Black", Size: "L", Quantity: 1})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if len(view.Items) != 2 {
		t.Fatalf("different size must be a separate line, got %d", len(view.Items))
	}
}

func TestAddItemRejectsInactiveProduct(t *testing.T) {
	svc, _, productRepo := newCartTestService(t)
	product := seedCartProduct(t, productRepo, "Retired Coat", 100, false)
	ctx := context.Background()
	token := svc.EnsureToken("")

	if _, err := svc.AddItem(ctx, token, AddCartItemInput{ProductID: product.ID, Quantity: 1}); err != ErrProductNotAvailable {
		t.Fatalf("inactive product want ErrProductNotAvailable got %v", err)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	svc, _, productRepo := newCartTestService(t)
	product := seedCartProduct(t, productRepo, "Wool Coat", 100, true)
	ctx := context.Background()
	token := svc.EnsureToken("")

	if _, err := svc.AddItem(ctx, token, AddCartItemInput{ProductID: product.ID, Color: "Black", Size: "M", Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	view, err := svc.UpdateQuantity(ctx, token, product.ID, "Black", "M", 0)
	if err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}

	if len(view.Items) != 0 {
		t.Fatalf("quantity 0 must remove the line, got %d lines", len(view.Items))
	}
	if view.ItemCount != 0 {
		t.Fatalf("item count want 0 got %d", view.ItemCount)
	}
}

func TestUpdateQuantityMissingLine(t *testing.T) {
	svc, _, _ := newCartTestService(t)
	token := svc.EnsureToken("")

	if _, err := svc.UpdateQuantity(context.Background(), token, 42, "Black", "M", 2); err != ErrNotFound {
		t.Fatalf("missing line want ErrNotFound got %v", err)
	}
}

func TestCartSubtotalDerivedFromLines(t *testing.T) {
	svc, _, productRepo := newCartTestService(t)
	coat := seedCartProduct(t, productRepo, "Wool Coat", 100, true)
	scarf := seedCartProduct(t, productRepo, "Silk Scarf", 50, true)
	ctx := context.Background()
	token := svc.EnsureToken("")

	if _, err := svc.AddItem(ctx, token, AddCartItemInput{ProductID: coat.ID, Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	view, err := svc.AddItem(ctx, token, AddCartItemInput{ProductID: scarf.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if view.Subtotal.String() != "250.00" {
		t.Fatalf("subtotal want 250.00 got %s", view.Subtotal.String())
	}
	if view.ItemCount != 3 {
		t.Fatalf("item count want 3 got %d", view.ItemCount)
	}
}

func TestCorruptPayloadYieldsEmptyCart(t *testing.T) {
	svc, store, _ := newCartTestService(t)
	token := svc.EnsureToken("")
	store.SeedRaw(token, []byte("{not valid json"))

	view, err := svc.Get(context.Background(), token)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("corrupt payload must read as empty cart, got %d lines", len(view.Items))
	}
	if view.Subtotal.String() != "0.00" {
		t.Fatalf("subtotal want 0.00 got %s", view.Subtotal.String())
	}

	lines, loadErr := store.Load(context.Background(), token)
	if loadErr != nil || lines != nil {
		t.Fatalf("corrupt payload must be discarded after read, got lines=%v err=%v", lines, loadErr)
	}
}

func TestEnsureTokenIssuesAndKeeps(t *testing.T) {
	svc, _, _ := newCartTestService(t)

	issued := svc.EnsureToken("")
	if issued == "" {
		t.Fatalf("expected new token for empty input")
	}
	if kept := svc.EnsureToken(issued); kept != issued {
		t.Fatalf("existing token must be kept, want %q got %q", issued, kept)
	}
}
