package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                                      // 主键
	Title       string         `gorm:"type:varchar(200);not null;index" json:"title"`             // 商品标题
	Description string         `gorm:"type:text" json:"description"`                              // 商品描述
	PriceAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`        // 价格金额
	Category    string         `gorm:"type:varchar(120);index" json:"category"`                   // 分类名称
	Stock       int            `gorm:"not null;default:0" json:"stock"`                           // 库存数量
	ThemeColor  string         `gorm:"type:varchar(20);default:'#000000'" json:"theme_color"`     // 主题色
	Images      StringArray    `gorm:"type:json" json:"images"`                                   // 图片数组
	Colors      StringArray    `gorm:"type:json" json:"colors"`                                   // 可选颜色
	Sizes       StringArray    `gorm:"type:json" json:"sizes"`                                    // 可选尺码
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`                       // 是否上架
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
