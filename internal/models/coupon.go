package models

import "time"

// Coupon 优惠券
type Coupon struct {
	ID          uint      `gorm:"primarykey" json:"id"`                                      // 主键
	Code        string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"code"`         // 优惠码（统一大写）
	Description string    `gorm:"type:varchar(255)" json:"description"`                      // 说明
	Type        string    `gorm:"type:varchar(20);not null" json:"type"`                     // 类型（PERCENTAGE/FIXED）
	Value       Money     `gorm:"type:decimal(20,2);not null" json:"value"`                  // 数值（百分比或固定金额）
	MinPurchase Money     `gorm:"type:decimal(20,2);not null;default:0" json:"min_purchase"` // 最低消费
	MaxDiscount *Money    `gorm:"type:decimal(20,2)" json:"max_discount"`                    // 最大优惠金额（空表示不限）
	UsageLimit  *int      `json:"usage_limit"`                                               // 总使用上限（空表示不限）
	UsageCount  int       `gorm:"not null;default:0" json:"usage_count"`                     // 已使用次数
	ValidFrom   time.Time `gorm:"not null;index" json:"valid_from"`                          // 生效时间
	ValidTo     time.Time `gorm:"not null;index" json:"valid_to"`                            // 失效时间
	Active      bool      `gorm:"not null;index" json:"active"`                              // 是否启用
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                                // 更新时间
}

// TableName 指定表名
func (Coupon) TableName() string {
	return "coupons"
}
