package models

import "time"

// FooterSection 页脚链接分组
type FooterSection struct {
	ID        uint      `gorm:"primarykey" json:"id"`                    // 主键
	Title     string    `gorm:"type:varchar(120);not null" json:"title"` // 分组标题
	IsActive  bool      `gorm:"not null;index" json:"is_active"`         // 是否启用
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`       // 排序
	CreatedAt time.Time `json:"created_at"`                              // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                              // 更新时间

	Links []FooterLink `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"links,omitempty"` // 分组链接
}

// TableName 指定表名
func (FooterSection) TableName() string {
	return "footer_sections"
}

// FooterLink 页脚链接
type FooterLink struct {
	ID        uint      `gorm:"primarykey" json:"id"`                    // 主键
	SectionID uint      `gorm:"not null;index" json:"section_id"`        // 所属分组
	Label     string    `gorm:"type:varchar(120);not null" json:"label"` // 链接文字
	URL       string    `gorm:"type:varchar(1000);not null" json:"url"`  // 链接地址
	SortOrder int       `gorm:"default:0" json:"sort_order"`             // 排序
	CreatedAt time.Time `json:"created_at"`                              // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                              // 更新时间
}

// TableName 指定表名
func (FooterLink) TableName() string {
	return "footer_links"
}
