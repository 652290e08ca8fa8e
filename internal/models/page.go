package models

import (
	"time"

	"gorm.io/gorm"
)

// Page 页面表（可视化编辑器的组件容器）
type Page struct {
	ID        uint           `gorm:"primarykey" json:"id"`                    // 主键
	Title     string         `gorm:"type:varchar(200);not null" json:"title"` // 页面标题
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`        // URL 标识（由标题派生）
	IsHome    bool           `gorm:"default:false;index" json:"is_home"`      // 是否首页（历史数据可能存在多个，不在存储层强制）
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                 // 创建时间（页面列表默认排序依据）
	UpdatedAt time.Time      `json:"updated_at"`                              // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                          // 软删除

	Components []PageComponent `gorm:"foreignKey:PageID" json:"components,omitempty"` // 组件列表
}

// TableName 指定表名
func (Page) TableName() string {
	return "pages"
}
