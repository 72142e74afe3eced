package models

import "time"

// Banner 首页主轮播图
type Banner struct {
	ID          uint       `gorm:"primarykey" json:"id"`                    // 主键
	Title       string     `gorm:"type:varchar(160)" json:"title"`          // 标题
	Subtitle    string     `gorm:"type:varchar(255)" json:"subtitle"`       // 副标题
	Image       string     `gorm:"type:varchar(500);not null" json:"image"` // 主图
	MobileImage string     `gorm:"type:varchar(500)" json:"mobile_image"`   // 移动端图片
	LinkURL     string     `gorm:"type:varchar(1000)" json:"link_url"`      // 跳转地址
	ButtonText  string     `gorm:"type:varchar(60)" json:"button_text"`     // 按钮文案
	IsActive    bool       `gorm:"not null;index" json:"is_active"`         // 是否启用
	StartAt     *time.Time `gorm:"index" json:"start_at"`                   // 生效时间
	EndAt       *time.Time `gorm:"index" json:"end_at"`                     // 失效时间
	SortOrder   int        `gorm:"default:0;index" json:"sort_order"`       // 排序
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`                 // 创建时间
	UpdatedAt   time.Time  `json:"updated_at"`                              // 更新时间
}

// TableName 指定表名
func (Banner) TableName() string {
	return "banners"
}

// MidBanner 首页中部促销横幅
type MidBanner struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                    // 主键
	Title     string    `gorm:"type:varchar(160)" json:"title"`                          // 标题
	Image     string    `gorm:"type:varchar(500);not null" json:"image"`                 // 图片
	LinkURL   string    `gorm:"type:varchar(1000)" json:"link_url"`                      // 跳转地址
	Position  string    `gorm:"type:varchar(40);default:'middle';index" json:"position"` // 展示位置
	IsActive  bool      `gorm:"not null;index" json:"is_active"`                         // 是否启用
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`                       // 排序
	CreatedAt time.Time `json:"created_at"`                                              // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                              // 更新时间
}

// TableName 指定表名
func (MidBanner) TableName() string {
	return "mid_banners"
}
