package repository

import (
	"errors"
	"strings"

	"github.com/maison-next/internal/models"

	"gorm.io/gorm"
)

// PageRepository 页面数据访问接口
type PageRepository interface {
	List(filter PageListFilter) ([]models.Page, int64, error)
	GetByID(id uint) (*models.Page, error)
	GetBySlug(slug string) (*models.Page, error)
	GetHome() (*models.Page, error)
	Create(page *models.Page) error
	Update(page *models.Page) error
	Delete(id uint) error
}

// GormPageRepository GORM 实现
type GormPageRepository struct {
	db *gorm.DB
}

// NewPageRepository 创建页面仓库
func NewPageRepository(db *gorm.DB) *GormPageRepository {
	return &GormPageRepository{db: db}
}

// List 页面列表（按创建时间正序，与后台侧栏展示顺序一致）
func (r *GormPageRepository) List(filter PageListFilter) ([]models.Page, int64, error) {
	var pages []models.Page
	query := r.db.Model(&models.Page{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR slug LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "created_at ASC, id ASC"
	}

	if err := query.Order(orderBy).Find(&pages).Error; err != nil {
		return nil, 0, err
	}
	return pages, total, nil
}

// GetByID 根据 ID 获取页面
func (r *GormPageRepository) GetByID(id uint) (*models.Page, error) {
	var page models.Page
	if err := r.db.First(&page, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

// GetBySlug 根据 slug 获取页面
func (r *GormPageRepository) GetBySlug(slug string) (*models.Page, error) {
	var page models.Page
	if err := r.db.Where("slug = ?", slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

// GetHome 获取首页标记页面；存在多个时取最早创建的一个
func (r *GormPageRepository) GetHome() (*models.Page, error) {
	var page models.Page
	err := r.db.Where("is_home = ?", true).Order("created_at ASC, id ASC").First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

// Create 创建页面
func (r *GormPageRepository) Create(page *models.Page) error {
	return r.db.Create(page).Error
}

// Update 更新页面
func (r *GormPageRepository) Update(page *models.Page) error {
	return r.db.Save(page).Error
}

// Delete 删除页面
func (r *GormPageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Page{}, id).Error
}
