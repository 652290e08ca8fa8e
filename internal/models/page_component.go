package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// JSON 类型定义，用于存储开放的键值配置
type JSON map[string]interface{}

// Value 实现 driver.Valuer 接口
func (j JSON) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan 实现 sql.Scanner 接口
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = make(JSON)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, j)
}

// StringArray 字符串数组类型，用于存储 images、colors 等
type StringArray []string

// Value 实现 driver.Valuer 接口
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan 实现 sql.Scanner 接口
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// PageComponent 页面组件表（页面上的一个内容块实例）
//
// 同一页面内 position 唯一且决定渲染顺序；重排后总是写回 0..N-1 的
// 连续序列，删除后允许留洞。
type PageComponent struct {
	ID         uint           `gorm:"primarykey" json:"id"`                        // 主键
	PageID     uint           `gorm:"not null;index" json:"page_id"`               // 所属页面
	Type       string         `gorm:"type:varchar(40);not null;index" json:"type"` // 组件类型（navigation/hero/product_grid/contact_form/cart/footer）
	ConfigJSON JSON           `gorm:"type:json;column:config" json:"config"`       // 实例配置（读取时与类型默认值合并）
	Position   int            `gorm:"not null;default:0;index" json:"position"`    // 页面内排序（0 起）
	IsActive   bool           `gorm:"default:true;index" json:"is_active"`         // 是否在访客端渲染
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                     // 创建时间
	UpdatedAt  time.Time      `json:"updated_at"`                                  // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                              // 软删除
}

// TableName 指定表名
func (PageComponent) TableName() string {
	return "page_components"
}
