package models

import "time"

// FeatureCard 首页服务卖点卡片（如 "Free delivery"）
type FeatureCard struct {
	ID          uint      `gorm:"primarykey" json:"id"`                    // 主键
	Title       string    `gorm:"type:varchar(120);not null" json:"title"` // 标题
	Description string    `gorm:"type:varchar(255)" json:"description"`    // 描述
	Icon        string    `gorm:"type:varchar(500)" json:"icon"`           // 图标名称或图片
	IsActive    bool      `gorm:"not null;index" json:"is_active"`         // 是否启用
	SortOrder   int       `gorm:"default:0;index" json:"sort_order"`       // 排序
	CreatedAt   time.Time `json:"created_at"`                              // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                              // 更新时间
}

// TableName 指定表名
func (FeatureCard) TableName() string {
	return "feature_cards"
}
