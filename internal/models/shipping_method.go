package models

import "time"

// ShippingMethod 配送方式（固定运费，可选订单金额区间）
type ShippingMethod struct {
	ID            uint      `gorm:"primarykey" json:"id"`                              // 主键
	Name          string    `gorm:"type:varchar(120);not null" json:"name"`            // 名称
	Description   string    `gorm:"type:varchar(255)" json:"description"`              // 说明
	Cost          Money     `gorm:"type:decimal(20,2);not null;default:0" json:"cost"` // 运费
	MinOrderValue *Money    `gorm:"type:decimal(20,2)" json:"min_order_value"`         // 最低订单金额（含）
	MaxOrderValue *Money    `gorm:"type:decimal(20,2)" json:"max_order_value"`         // 最高订单金额（含）
	EstimatedDays string    `gorm:"type:varchar(60)" json:"estimated_days"`            // 预计时效，如 "2-3 days"
	SortOrder     int       `gorm:"default:0;index" json:"sort_order"`                 // 排序权重
	IsActive      bool      `gorm:"not null;index" json:"is_active"`                   // 是否启用
	CreatedAt     time.Time `json:"created_at"`                                        // 创建时间
	UpdatedAt     time.Time `json:"updated_at"`                                        // 更新时间
}

// TableName 指定表名
func (ShippingMethod) TableName() string {
	return "shipping_methods"
}
