package models

import "time"

// ProductVariant 商品规格（颜色、尺码等）
type ProductVariant struct {
	ID           uint      `gorm:"primarykey" json:"id"`                               // 主键
	ProductID    uint      `gorm:"not null;index" json:"product_id"`                   // 商品ID
	Name         string    `gorm:"type:varchar(160);not null" json:"name"`             // 规格名称，如 "Red / XL"
	SKU          *string   `gorm:"type:varchar(64);uniqueIndex" json:"sku"`            // SKU 编码（可空，非空时唯一）
	Price        Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 规格售价
	ComparePrice *Money    `gorm:"type:decimal(20,2)" json:"compare_price"`            // 划线价
	Stock        int       `gorm:"not null;default:0" json:"stock"`                    // 展示库存
	Attributes   JSON      `gorm:"type:json" json:"attributes"`                        // 规格属性
	Image        string    `gorm:"type:varchar(500)" json:"image"`                     // 规格图片
	IsActive     bool      `gorm:"not null;index" json:"is_active"`                    // 是否启用
	SortOrder    int       `gorm:"default:0" json:"sort_order"`                        // 排序权重
	CreatedAt    time.Time `json:"created_at"`                                         // 创建时间
	UpdatedAt    time.Time `json:"updated_at"`                                         // 更新时间
}

// TableName 指定表名
func (ProductVariant) TableName() string {
	return "product_variants"
}
