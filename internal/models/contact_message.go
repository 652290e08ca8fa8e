package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactMessage 联系表单留言
type ContactMessage struct {
	ID         uint           `gorm:"primarykey" json:"id"`                              // 主键
	Email      string         `gorm:"type:varchar(200);not null;index" json:"email"`     // 留言邮箱
	Message    string         `gorm:"type:text;not null" json:"message"`                 // 留言内容
	PageSlug   string         `gorm:"type:varchar(200);index" json:"page_slug"`          // 来源页面
	Status     string         `gorm:"type:varchar(20);not null;index" json:"status"`     // 处理状态（new/notified/closed）
	NotifiedAt *time.Time     `json:"notified_at"`                                       // 通知时间
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                           // 创建时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                    // 软删除
}

// TableName 指定表名
func (ContactMessage) TableName() string {
	return "contact_messages"
}
