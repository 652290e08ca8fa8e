package service

import (
	"strings"

	"github.com/maison-next/internal/models"
	"github.com/maison-next/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService 商品业务服务
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ProductInput 创建/更新商品输入
type ProductInput struct {
	Title       string
	Description string
	Price       *models.Money
	Category    string
	Stock       *int
	ThemeColor  string
	Images      []string
	Colors      []string
	Sizes       []string
	IsActive    *bool
}

// ListPublic 前台商品列表（仅上架商品）
func (s *ProductService) ListPublic(category string, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		Category:   strings.TrimSpace(category),
		OnlyActive: true,
	}
	return s.repo.List(filter)
}

// ListAdmin 后台商品列表
func (s *ProductService) ListAdmin(category, search string, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:     page,
		PageSize: pageSize,
		Category: strings.TrimSpace(category),
		Search:   strings.TrimSpace(search),
	}
	return s.repo.List(filter)
}

// GetByID 根据 ID 获取商品
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	product, err := buildProductEntity(input, nil)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 更新商品
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	product, err := buildProductEntity(input, existing)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func buildProductEntity(input ProductInput, existing *models.Product) (*models.Product, error) {
	title := strings.TrimSpace(input.Title)
	if existing == nil && title == "" {
		return nil, ErrInvalidProduct
	}
	if input.Price != nil && input.Price.Decimal.LessThan(decimal.Zero) {
		return nil, ErrInvalidProduct
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, ErrInvalidProduct
	}

	if existing == nil {
		product := &models.Product{
			Title:       title,
			Description: strings.TrimSpace(input.Description),
			Category:    strings.TrimSpace(input.Category),
			ThemeColor:  strings.TrimSpace(input.ThemeColor),
			Images:      models.StringArray(input.Images),
			Colors:      models.StringArray(input.Colors),
			Sizes:       models.StringArray(input.Sizes),
			IsActive:    true,
		}
		if input.Price != nil {
			product.PriceAmount = *input.Price
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}
		if input.IsActive != nil {
			product.IsActive = *input.IsActive
		}
		return product, nil
	}

	if title != "" {
		existing.Title = title
	}
	if input.Description != "" {
		existing.Description = strings.TrimSpace(input.Description)
	}
	if input.Price != nil {
		existing.PriceAmount = *input.Price
	}
	if input.Category != "" {
		existing.Category = strings.TrimSpace(input.Category)
	}
	if input.Stock != nil {
		existing.Stock = *input.Stock
	}
	if input.ThemeColor != "" {
		existing.ThemeColor = strings.TrimSpace(input.ThemeColor)
	}
	if input.Images != nil {
		existing.Images = models.StringArray(input.Images)
	}
	if input.Colors != nil {
		existing.Colors = models.StringArray(input.Colors)
	}
	if input.Sizes != nil {
		existing.Sizes = models.StringArray(input.Sizes)
	}
	if input.IsActive != nil {
		existing.IsActive = *input.IsActive
	}
	return existing, nil
}
