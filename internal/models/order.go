package models

import "time"

// Order 订单表（金额字段均为下单时快照）
type Order struct {
	ID                 uint       `gorm:"primarykey" json:"id"`                                       // 主键
	OrderNumber        string     `gorm:"type:varchar(32);uniqueIndex;not null" json:"order_number"`  // 订单号
	UserID             *uint      `gorm:"index" json:"user_id,omitempty"`                             // 顾客账号（游客为空）
	CustomerName       string     `gorm:"type:varchar(120);not null" json:"customer_name"`            // 收货人
	CustomerEmail      string     `gorm:"type:varchar(191);not null;index" json:"customer_email"`     // 邮箱
	CustomerPhone      string     `gorm:"type:varchar(32);not null" json:"customer_phone"`            // 手机号
	ShippingAddress    string     `gorm:"type:text;not null" json:"shipping_address"`                 // 详细地址
	City               string     `gorm:"type:varchar(120)" json:"city"`                              // 城市
	Area               string     `gorm:"type:varchar(120)" json:"area"`                              // 区域
	PostalCode         string     `gorm:"type:varchar(20)" json:"postal_code"`                        // 邮编
	Note               string     `gorm:"type:text" json:"note"`                                      // 备注
	Status             string     `gorm:"type:varchar(20);not null;index" json:"status"`              // 订单状态
	PaymentStatus      string     `gorm:"type:varchar(20);not null;index" json:"payment_status"`      // 支付状态
	PaymentMethod      string     `gorm:"type:varchar(20);not null" json:"payment_method"`            // 支付方式
	Subtotal           Money      `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`      // 商品小计
	Discount           Money      `gorm:"type:decimal(20,2);not null;default:0" json:"discount"`      // 优惠金额
	ShippingCost       Money      `gorm:"type:decimal(20,2);not null;default:0" json:"shipping_cost"` // 运费
	Total              Money      `gorm:"type:decimal(20,2);not null;default:0" json:"total"`         // 应付总额
	Currency           string     `gorm:"type:varchar(8);not null" json:"currency"`                   // 币种
	CouponID           *uint      `gorm:"index" json:"coupon_id,omitempty"`                           // 优惠券ID
	CouponCode         string     `gorm:"type:varchar(64)" json:"coupon_code,omitempty"`              // 优惠码快照
	ShippingMethodID   *uint      `gorm:"index" json:"shipping_method_id,omitempty"`                  // 配送方式ID
	ShippingMethodName string     `gorm:"type:varchar(120)" json:"shipping_method_name"`              // 配送方式快照
	ClientIP           string     `gorm:"type:varchar(64)" json:"client_ip,omitempty"`                // 下单客户端IP
	Locale             string     `gorm:"type:varchar(10)" json:"locale,omitempty"`                   // 下单语言（邮件使用）
	StatusChangedAt    *time.Time `json:"status_changed_at"`                                          // 最近状态变更时间
	CreatedAt          time.Time  `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt          time.Time  `json:"updated_at"`                                                 // 更新时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
