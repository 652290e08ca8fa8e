package repository

import (
	"errors"

	"github.com/maison-next/internal/models"

	"gorm.io/gorm"
)

// PageComponentRepository 页面组件数据访问接口
type PageComponentRepository interface {
	ListByPage(pageID uint, onlyActive bool) ([]models.PageComponent, error)
	GetByID(id uint) (*models.PageComponent, error)
	MaxPosition(pageID uint) (int, bool, error)
	Create(component *models.PageComponent) error
	Update(component *models.PageComponent) error
	UpdateConfig(id uint, config models.JSON) error
	UpdatePosition(id uint, position int) error
	Delete(id uint) error
	DeleteByPage(pageID uint) error
}

// GormPageComponentRepository GORM 实现
type GormPageComponentRepository struct {
	db *gorm.DB
}

// NewPageComponentRepository 创建页面组件仓库
func NewPageComponentRepository(db *gorm.DB) *GormPageComponentRepository {
	return &GormPageComponentRepository{db: db}
}

// ListByPage 获取页面下的组件，按 position 正序
func (r *GormPageComponentRepository) ListByPage(pageID uint, onlyActive bool) ([]models.PageComponent, error) {
	var components []models.PageComponent
	query := r.db.Model(&models.PageComponent{}).Where("page_id = ?", pageID)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("position ASC, id ASC").Find(&components).Error; err != nil {
		return nil, err
	}
	return components, nil
}

// GetByID 根据 ID 获取组件
func (r *GormPageComponentRepository) GetByID(id uint) (*models.PageComponent, error) {
	var component models.PageComponent
	if err := r.db.First(&component, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &component, nil
}

// MaxPosition 页面内当前最大 position；第二个返回值为 false 表示页面还没有组件
func (r *GormPageComponentRepository) MaxPosition(pageID uint) (int, bool, error) {
	var max *int
	err := r.db.Model(&models.PageComponent{}).
		Where("page_id = ?", pageID).
		Select("MAX(position)").
		Scan(&max).Error
	if err != nil {
		return 0, false, err
	}
	if max == nil {
		return 0, false, nil
	}
	return *max, true, nil
}

// Create 创建组件
func (r *GormPageComponentRepository) Create(component *models.PageComponent) error {
	return r.db.Create(component).Error
}

// Update 更新组件
func (r *GormPageComponentRepository) Update(component *models.PageComponent) error {
	return r.db.Save(component).Error
}

// UpdateConfig 只更新组件配置
func (r *GormPageComponentRepository) UpdateConfig(id uint, config models.JSON) error {
	return r.db.Model(&models.PageComponent{}).Where("id = ?", id).Update("config", config).Error
}

// UpdatePosition 只更新组件排序位
func (r *GormPageComponentRepository) UpdatePosition(id uint, position int) error {
	return r.db.Model(&models.PageComponent{}).Where("id = ?", id).Update("position", position).Error
}

// Delete 删除组件（不回收剩余组件的 position，空洞由下次重排消除）
func (r *GormPageComponentRepository) Delete(id uint) error {
	return r.db.Delete(&models.PageComponent{}, id).Error
}

// DeleteByPage 删除页面下的全部组件
func (r *GormPageComponentRepository) DeleteByPage(pageID uint) error {
	return r.db.Where("page_id = ?", pageID).Delete(&models.PageComponent{}).Error
}
