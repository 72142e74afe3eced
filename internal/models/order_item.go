package models

import "time"

// OrderItem 订单项表
type OrderItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                    // 主键
	OrderID     uint      `gorm:"index;not null" json:"order_id"`                          // 订单ID
	ProductID   uint      `gorm:"index;not null" json:"product_id"`                        // 商品ID
	VariantID   *uint     `gorm:"index" json:"variant_id,omitempty"`                       // 规格ID
	ProductName string    `gorm:"type:varchar(255);not null" json:"product_name"`          // 商品名称快照
	VariantName string    `gorm:"type:varchar(160)" json:"variant_name,omitempty"`         // 规格名称快照
	ProductSlug string    `gorm:"type:varchar(255)" json:"product_slug"`                   // 商品 slug 快照
	Image       string    `gorm:"type:varchar(500)" json:"image"`                          // 图片快照
	UnitPrice   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // 单价
	Quantity    int       `gorm:"not null" json:"quantity"`                                // 数量
	LineTotal   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"line_total"` // 小计
	CreatedAt   time.Time `json:"created_at"`                                              // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
