package models

import "time"

// ProductSection 首页商品区块
type ProductSection struct {
	ID         uint      `gorm:"primarykey" json:"id"`                               // 主键
	Title      string    `gorm:"type:varchar(160);not null" json:"title"`            // 标题
	Slug       string    `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"` // 唯一标识
	Type       string    `gorm:"type:varchar(20);not null" json:"type"`              // 区块类型
	CategoryID *uint     `gorm:"index" json:"category_id"`                           // 分类区块对应分类
	ProductIDs UintArray `gorm:"type:json" json:"product_ids"`                       // 自定义区块商品
	ItemLimit  int       `gorm:"not null;default:8" json:"item_limit"`               // 展示数量
	IsActive   bool      `gorm:"not null;index" json:"is_active"`                    // 是否启用
	SortOrder  int       `gorm:"default:0;index" json:"sort_order"`                  // 排序
	CreatedAt  time.Time `json:"created_at"`                                         // 创建时间
	UpdatedAt  time.Time `json:"updated_at"`                                         // 更新时间
}

// TableName 指定表名
func (ProductSection) TableName() string {
	return "product_sections"
}
