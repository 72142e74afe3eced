package models

import "time"

// MenuItem 导航菜单项（ParentID 指向上级菜单）
type MenuItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                    // 主键
	Label     string    `gorm:"type:varchar(120);not null" json:"label"` // 菜单名称
	URL       string    `gorm:"type:varchar(1000);not null" json:"url"`  // 链接
	ParentID  *uint     `gorm:"index" json:"parent_id"`                  // 上级菜单
	IsActive  bool      `gorm:"not null;index" json:"is_active"`         // 是否启用
	SortOrder int       `gorm:"default:0;index" json:"sort_order"`       // 排序
	CreatedAt time.Time `json:"created_at"`                              // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                              // 更新时间

	Children []MenuItem `gorm:"-" json:"children,omitempty"` // 子菜单（组装树时填充）
}

// TableName 指定表名
func (MenuItem) TableName() string {
	return "menu_items"
}
