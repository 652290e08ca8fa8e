package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表（结算时从购物车快照生成，不含支付流程）
type Order struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                      // 主键
	OrderNo      string         `gorm:"uniqueIndex;not null" json:"order_no"`                      // 订单编号
	Status       string         `gorm:"index;not null" json:"status"`                              // 订单状态（pending/processing/completed/canceled）
	Currency     string         `gorm:"type:varchar(10);not null" json:"currency"`                 // 币种
	TotalAmount  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 订单总额
	CustomerJSON JSON           `gorm:"type:json;column:customer_info" json:"customer_info"`       // 客户信息快照
	ItemsJSON    JSON           `gorm:"type:json;column:items" json:"items"`                       // 购物车行快照
	ClientIP     string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"`               // 下单客户端IP
	CanceledAt   *time.Time     `gorm:"index" json:"canceled_at"`                                  // 取消时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`                                   // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
