// Package pricing 结算金额计算与优惠券规则校验，不依赖数据库，便于做性质测试。
package pricing

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// 优惠券类型
const (
	CouponTypePercentage = "PERCENTAGE"
	CouponTypeFixed      = "FIXED"
)

// CurrencySymbol 金额展示符号
const CurrencySymbol = "৳"

// 优惠券拒绝原因（按校验顺序排列）
var (
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponInactive      = errors.New("coupon is not active")
	ErrCouponNotYetValid   = errors.New("coupon is not yet valid")
	ErrCouponExpired       = errors.New("coupon has expired")
	ErrCouponUsageExceeded = errors.New("coupon usage limit reached")
	ErrMinPurchaseNotMet   = errors.New("minimum purchase not met")
)

// MinPurchaseError 未达到最低消费，携带所需金额
type MinPurchaseError struct {
	Required decimal.Decimal
}

func (e *MinPurchaseError) Error() string {
	return fmt.Sprintf("%s (requires %s)", ErrMinPurchaseNotMet.Error(), FormatAmount(e.Required))
}

// Unwrap 支持 errors.Is(err, ErrMinPurchaseNotMet)
func (e *MinPurchaseError) Unwrap() error {
	return ErrMinPurchaseNotMet
}

// Coupon 参与计算的优惠券规则
type Coupon struct {
	Code        string
	Type        string
	Value       decimal.Decimal
	MinPurchase decimal.Decimal
	MaxDiscount *decimal.Decimal
	UsageLimit  *int
	UsageCount  int
	ValidFrom   time.Time
	ValidTo     time.Time
	Active      bool
}

// Breakdown 金额明细
type Breakdown struct {
	Subtotal     decimal.Decimal
	Discount     decimal.Decimal
	ShippingCost decimal.Decimal
	Total        decimal.Decimal
}

// Round 统一保留两位小数
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// FormatAmount 格式化金额，如 ৳1000.00
func FormatAmount(amount decimal.Decimal) string {
	return CurrencySymbol + Round(amount).StringFixed(2)
}

// Subtotal 计算行小计之和
func Subtotal(lines ...decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line)
	}
	return Round(sum)
}

// LineTotal 单价 × 数量
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return Round(unitPrice.Mul(decimal.NewFromInt(int64(quantity))))
}

// ValidateCoupon 按固定顺序校验优惠券，返回第一个失败原因
func ValidateCoupon(coupon *Coupon, subtotal decimal.Decimal, now time.Time) error {
	if coupon == nil {
		return ErrCouponNotFound
	}
	if !coupon.Active {
		return ErrCouponInactive
	}
	if now.Before(coupon.ValidFrom) {
		return ErrCouponNotYetValid
	}
	if now.After(coupon.ValidTo) {
		return ErrCouponExpired
	}
	if coupon.UsageLimit != nil && coupon.UsageCount >= *coupon.UsageLimit {
		return ErrCouponUsageExceeded
	}
	if subtotal.LessThan(coupon.MinPurchase) {
		return &MinPurchaseError{Required: Round(coupon.MinPurchase)}
	}
	return nil
}

// Discount 计算优惠金额，结果不超过小计
func Discount(coupon *Coupon, subtotal decimal.Decimal) decimal.Decimal {
	if coupon == nil || !subtotal.IsPositive() {
		return decimal.Zero
	}
	var amount decimal.Decimal
	switch coupon.Type {
	case CouponTypePercentage:
		amount = subtotal.Mul(coupon.Value).Div(decimal.NewFromInt(100))
		if coupon.MaxDiscount != nil && coupon.MaxDiscount.IsPositive() && amount.GreaterThan(*coupon.MaxDiscount) {
			amount = *coupon.MaxDiscount
		}
	case CouponTypeFixed:
		amount = coupon.Value
	default:
		return decimal.Zero
	}
	if amount.IsNegative() {
		return decimal.Zero
	}
	if amount.GreaterThan(subtotal) {
		amount = subtotal
	}
	return Round(amount)
}

// Compute 计算结算明细：total = subtotal - discount + shipping
// coupon 需已通过 ValidateCoupon，传 nil 表示不使用优惠券
func Compute(subtotal decimal.Decimal, coupon *Coupon, shippingCost decimal.Decimal) Breakdown {
	subtotal = Round(subtotal)
	shippingCost = Round(shippingCost)
	if shippingCost.IsNegative() {
		shippingCost = decimal.Zero
	}
	discount := Discount(coupon, subtotal)
	return Breakdown{
		Subtotal:     subtotal,
		Discount:     discount,
		ShippingCost: shippingCost,
		Total:        Round(subtotal.Sub(discount).Add(shippingCost)),
	}
}

// ShippingAvailable 判断配送方式金额区间是否覆盖小计（按优惠前小计判断，边界包含）
func ShippingAvailable(minOrder, maxOrder *decimal.Decimal, subtotal decimal.Decimal) bool {
	if minOrder != nil && subtotal.LessThan(*minOrder) {
		return false
	}
	if maxOrder != nil && subtotal.GreaterThan(*maxOrder) {
		return false
	}
	return true
}
