package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin 管理员表
type Admin struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                              // 主键
	Username     string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`             // 管理员账号
	DisplayName  string         `gorm:"type:varchar(120)" json:"display_name"`                             // 显示名称
	PasswordHash string         `gorm:"not null" json:"-"`                                                 // 密码哈希（不返回给前端）
	Role         string         `gorm:"type:varchar(40);not null;default:'super_admin';index" json:"role"` // 内置角色
	TokenVersion uint64         `gorm:"not null;default:0" json:"-"`                                       // Token 版本（用于登出与全量失效）
	IsDisabled   bool           `gorm:"not null;default:false" json:"is_disabled"`                         // 是否禁用
	LastLoginAt  *time.Time     `json:"last_login_at"`                                                     // 最后登录时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                           // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                                                        // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                                    // 软删除时间
}

// TableName 指定表名
func (Admin) TableName() string {
	return "admins"
}
