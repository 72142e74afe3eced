package models

import "time"

// Product 商品表
type Product struct {
	ID            uint        `gorm:"primarykey" json:"id"`                               // 主键
	CategoryID    uint        `gorm:"not null;index" json:"category_id"`                  // 分类ID
	SubCategoryID *uint       `gorm:"index" json:"sub_category_id"`                       // 子分类ID
	Name          string      `gorm:"type:varchar(255);not null" json:"name"`             // 名称
	Slug          string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"` // 唯一标识
	Description   string      `gorm:"type:text" json:"description"`                       // 详情描述
	Brand         string      `gorm:"type:varchar(120)" json:"brand"`                     // 品牌
	Price         Money       `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 售价
	ComparePrice  *Money      `gorm:"type:decimal(20,2)" json:"compare_price"`            // 划线价
	Images        StringArray `gorm:"type:json" json:"images"`                            // 图片列表
	Tags          StringArray `gorm:"type:json" json:"tags"`                              // 标签
	Stock         int         `gorm:"not null;default:0" json:"stock"`                    // 展示库存（下单不扣减）
	IsActive      bool        `gorm:"not null;index" json:"is_active"`                    // 是否上架
	IsFeatured    bool        `gorm:"default:false;index" json:"is_featured"`             // 精选
	IsNewArrival  bool        `gorm:"default:false;index" json:"is_new_arrival"`          // 新品
	IsBestSeller  bool        `gorm:"default:false;index" json:"is_best_seller"`          // 热销
	SortOrder     int         `gorm:"default:0;index" json:"sort_order"`                  // 排序权重
	CreatedAt     time.Time   `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt     time.Time   `json:"updated_at"`                                         // 更新时间

	Category    *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"`        // 分类
	SubCategory *SubCategory     `gorm:"foreignKey:SubCategoryID" json:"sub_category,omitempty"` // 子分类
	Variants    []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`         // 规格
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
