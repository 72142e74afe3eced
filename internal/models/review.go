package models

import "time"

// Review 商品评价
type Review struct {
	ID         uint      `gorm:"primarykey" json:"id"`                            // 主键
	ProductID  uint      `gorm:"not null;index" json:"product_id"`                // 商品ID
	UserID     *uint     `gorm:"index" json:"user_id,omitempty"`                  // 顾客账号
	Name       string    `gorm:"type:varchar(120);not null" json:"name"`          // 署名
	Email      string    `gorm:"type:varchar(191)" json:"-"`                      // 邮箱（不公开）
	Rating     int       `gorm:"not null" json:"rating"`                          // 评分 1-5
	Title      string    `gorm:"type:varchar(160)" json:"title"`                  // 标题
	Comment    string    `gorm:"type:text" json:"comment"`                        // 内容
	IsApproved bool      `gorm:"not null;default:false;index" json:"is_approved"` // 是否审核通过
	CreatedAt  time.Time `gorm:"index" json:"created_at"`                         // 创建时间
	UpdatedAt  time.Time `json:"updated_at"`                                      // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}
