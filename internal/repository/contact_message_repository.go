package repository

import (
	"errors"
	"strings"

	"github.com/maison-next/internal/models"

	"gorm.io/gorm"
)

// ContactMessageRepository 留言数据访问接口
type ContactMessageRepository interface {
	List(filter ContactMessageListFilter) ([]models.ContactMessage, int64, error)
	GetByID(id uint) (*models.ContactMessage, error)
	Create(message *models.ContactMessage) error
	Update(message *models.ContactMessage) error
	Delete(id uint) error
}

// GormContactMessageRepository GORM 实现
type GormContactMessageRepository struct {
	db *gorm.DB
}

// NewContactMessageRepository 创建留言仓库
func NewContactMessageRepository(db *gorm.DB) *GormContactMessageRepository {
	return &GormContactMessageRepository{db: db}
}

// List 留言列表
func (r *GormContactMessageRepository) List(filter ContactMessageListFilter) ([]models.ContactMessage, int64, error) {
	var messages []models.ContactMessage
	query := r.db.Model(&models.ContactMessage{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PageSlug != "" {
		query = query.Where("page_slug = ?", filter.PageSlug)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("email LIKE ? OR message LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	if err := query.Order("created_at DESC, id DESC").Find(&messages).Error; err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// GetByID 根据 ID 获取留言
func (r *GormContactMessageRepository) GetByID(id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := r.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

// Create 创建留言
func (r *GormContactMessageRepository) Create(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

// Update 更新留言
func (r *GormContactMessageRepository) Update(message *models.ContactMessage) error {
	return r.db.Save(message).Error
}

// Delete 删除留言
func (r *GormContactMessageRepository) Delete(id uint) error {
	return r.db.Delete(&models.ContactMessage{}, id).Error
}
