package models

import "time"

// Category 一级分类
type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`                               // 主键
	Name        string    `gorm:"type:varchar(120);not null" json:"name"`             // 名称
	Slug        string    `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"` // 唯一标识
	Description string    `gorm:"type:text" json:"description"`                       // 描述
	Image       string    `gorm:"type:varchar(500)" json:"image"`                     // 分类图片
	SortOrder   int       `gorm:"default:0;index" json:"sort_order"`                  // 排序权重
	IsActive    bool      `gorm:"not null;index" json:"is_active"`                    // 是否启用
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                         // 更新时间

	SubCategories []SubCategory `gorm:"foreignKey:CategoryID" json:"sub_categories,omitempty"` // 子分类
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}

// SubCategory 二级分类
type SubCategory struct {
	ID         uint      `gorm:"primarykey" json:"id"`                               // 主键
	CategoryID uint      `gorm:"not null;index" json:"category_id"`                  // 所属分类
	Name       string    `gorm:"type:varchar(120);not null" json:"name"`             // 名称
	Slug       string    `gorm:"type:varchar(160);uniqueIndex;not null" json:"slug"` // 唯一标识
	Image      string    `gorm:"type:varchar(500)" json:"image"`                     // 图片
	SortOrder  int       `gorm:"default:0;index" json:"sort_order"`                  // 排序权重
	IsActive   bool      `gorm:"not null;index" json:"is_active"`                    // 是否启用
	CreatedAt  time.Time `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt  time.Time `json:"updated_at"`                                         // 更新时间

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 所属分类
}

// TableName 指定表名
func (SubCategory) TableName() string {
	return "sub_categories"
}
