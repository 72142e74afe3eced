package models

import "time"

// Question 商品问答的提问
type Question struct {
	ID          uint      `gorm:"primarykey" json:"id"`                             // 主键
	ProductID   uint      `gorm:"not null;index" json:"product_id"`                 // 商品ID
	UserID      *uint     `gorm:"index" json:"user_id,omitempty"`                   // 顾客账号
	Name        string    `gorm:"type:varchar(120);not null" json:"name"`           // 提问人
	Email       string    `gorm:"type:varchar(191)" json:"-"`                       // 邮箱（不公开）
	Body        string    `gorm:"type:text;not null" json:"body"`                   // 问题内容
	IsPublished bool      `gorm:"not null;default:false;index" json:"is_published"` // 是否公开
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                          // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                       // 更新时间

	Answers []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"` // 回答
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`  // 关联商品
}

// TableName 指定表名
func (Question) TableName() string {
	return "questions"
}

// Answer 商品问答的回答
type Answer struct {
	ID         uint      `gorm:"primarykey" json:"id"`              // 主键
	QuestionID uint      `gorm:"not null;index" json:"question_id"` // 问题ID
	AdminID    *uint     `gorm:"index" json:"admin_id,omitempty"`   // 回答的管理员
	Body       string    `gorm:"type:text;not null" json:"body"`    // 回答内容
	CreatedAt  time.Time `json:"created_at"`                        // 创建时间
	UpdatedAt  time.Time `json:"updated_at"`                        // 更新时间
}

// TableName 指定表名
func (Answer) TableName() string {
	return "answers"
}
