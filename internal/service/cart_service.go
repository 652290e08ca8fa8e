package service

import (
	"context"
	"strings"

	"github.com/maison-next/internal/logger"
	"github.com/maison-next/internal/models"
	"github.com/maison-next/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartView 购物车响应视图，小计与件数均由行数据推导，不单独存储
type CartView struct {
	Token     string       `json:"token"`
	Items     []CartLine   `json:"items"`
	ItemCount int          `json:"item_count"`
	Subtotal  models.Money `json:"subtotal"`
}

// AddCartItemInput 加购输入
type AddCartItemInput struct {
	ProductID uint
	Color     string
	Size      string
	Quantity  int
}

// CartService 游客购物车服务
type CartService struct {
	store       CartStore
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(store CartStore, productRepo repository.ProductRepository) *CartService {
	return &CartService{store: store, productRepo: productRepo}
}

// EnsureToken 校验或签发购物车令牌
func (s *CartService) EnsureToken(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return uuid.NewString()
	}
	return token
}

// Get 读取购物车视图
func (s *CartService) Get(ctx context.Context, token string) (*CartView, error) {
	lines := s.loadLines(ctx, token)
	return s.buildView(token, lines), nil
}

// AddItem 加购。身份键 (product_id, color, size) 命中已有行时合并数量
func (s *CartService) AddItem(ctx context.Context, token string, input AddCartItemInput) (*CartView, error) {
	if input.ProductID == 0 || input.Quantity < 1 {
		return nil, ErrInvalidCartItem
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotAvailable
	}

	color := strings.TrimSpace(input.Color)
	size := strings.TrimSpace(input.Size)

	lines := s.loadLines(ctx, token)
	merged := false
	for index := range lines {
		if sameLineIdentity(lines[index], input.ProductID, color, size) {
			lines[index].Quantity += input.Quantity
			merged = true
			break
		}
	}
	if !merged {
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		lines = append(lines, CartLine{
			ProductID: product.ID,
			Title:     product.Title,
			UnitPrice: product.PriceAmount,
			Image:     image,
			Color:     color,
			Size:      size,
			Quantity:  input.Quantity,
		})
	}

	if err := s.store.Save(ctx, token, lines); err != nil {
		return nil, err
	}
	return s.buildView(token, lines), nil
}

// UpdateQuantity 修改行数量；数量小于 1 时移除该行
func (s *CartService) UpdateQuantity(ctx context.Context, token string, productID uint, color, size string, quantity int) (*CartView, error) {
	if productID == 0 {
		return nil, ErrInvalidCartItem
	}
	color = strings.TrimSpace(color)
	size = strings.TrimSpace(size)

	lines := s.loadLines(ctx, token)
	updated := make([]CartLine, 0, len(lines))
	found := false
	for _, line := range lines {
		if sameLineIdentity(line, productID, color, size) {
			found = true
			if quantity < 1 {
				continue
			}
			line.Quantity = quantity
		}
		updated = append(updated, line)
	}
	if !found {
		return nil, ErrNotFound
	}

	if err := s.store.Save(ctx, token, updated); err != nil {
		return nil, err
	}
	return s.buildView(token, updated), nil
}

// RemoveItem 移除一行
func (s *CartService) RemoveItem(ctx context.Context, token string, productID uint, color, size string) (*CartView, error) {
	return s.UpdateQuantity(ctx, token, productID, color, size, 0)
}

// Clear 清空购物车
func (s *CartService) Clear(ctx context.Context, token string) error {
	return s.store.Delete(ctx, token)
}

// Lines 读取原始购物车行，供结算使用
func (s *CartService) Lines(ctx context.Context, token string) []CartLine {
	return s.loadLines(ctx, token)
}

// loadLines 读取购物车行。负载损坏时视为空车，不让坏数据卡死前台
func (s *CartService) loadLines(ctx context.Context, token string) []CartLine {
	lines, err := s.store.Load(ctx, token)
	if err != nil {
		logger.Warnw("cart_payload_corrupt", "token", token, "error", err)
		_ = s.store.Delete(ctx, token)
		return nil
	}
	return lines
}

func (s *CartService) buildView(token string, lines []CartLine) *CartView {
	if lines == nil {
		lines = []CartLine{}
	}
	count := 0
	subtotal := decimal.Zero
	for _, line := range lines {
		count += line.Quantity
		lineTotal := line.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineTotal)
	}
	return &CartView{
		Token:     token,
		Items:     lines,
		ItemCount: count,
		Subtotal:  models.NewMoneyFromDecimal(subtotal),
	}
}

func sameLineIdentity(line CartLine, productID uint, color, size string) bool {
	return line.ProductID == productID && line.Color == color && line.Size == size
}
