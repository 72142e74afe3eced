package models

import "time"

// SocialLink 社交媒体链接
type SocialLink struct {
	ID        uint      `gorm:"primarykey" json:"id"`                      // 主键
	Platform  string    `gorm:"type:varchar(40);not null" json:"platform"` // 平台，如 facebook
	URL       string    `gorm:"type:varchar(1000);not null" json:"url"`    // 主页地址
	Icon      string    `gorm:"type:varchar(255)" json:"icon"`             // 图标
	IsActive  bool      `gorm:"not null;index" json:"is_active"`           // 是否启用
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`         // 排序
	CreatedAt time.Time `json:"created_at"`                                // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                // 更新时间
}

// TableName 指定表名
func (SocialLink) TableName() string {
	return "social_links"
}
