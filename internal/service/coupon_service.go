package service

import (
	"errors"
	"strings"
	"time"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/metrics"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/pricing"
	"github.com/bazaar-next/internal/repository"

	"github.com/shopspring/decimal"
)

// CouponService 优惠券服务（前台校验 + 后台管理）
type CouponService struct {
	couponRepo repository.CouponRepository
	usageRepo  repository.CouponUsageRepository
	now        func() time.Time
}

// NewCouponService 创建优惠券服务
func NewCouponService(couponRepo repository.CouponRepository, usageRepo repository.CouponUsageRepository) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		usageRepo:  usageRepo,
		now:        time.Now,
	}
}

// CouponValidation 优惠券校验结果
type CouponValidation struct {
	Valid    bool           `json:"valid"`
	Code     string         `json:"code"`
	Type     string         `json:"type,omitempty"`
	Value    models.Money   `json:"value"`
	Discount models.Money   `json:"discount"`
	Reason   string         `json:"reason,omitempty"`
	Coupon   *models.Coupon `json:"-"`
}

// CouponInput 创建/更新优惠券输入
type CouponInput struct {
	Code        string
	Description string
	Type        string
	Value       decimal.Decimal
	MinPurchase decimal.Decimal
	MaxDiscount *decimal.Decimal
	UsageLimit  *int
	ValidFrom   time.Time
	ValidTo     time.Time
	Active      bool
}

// Validate 按固定顺序校验优惠码并计算优惠金额
// 返回的 error 为优惠券拒绝原因（pricing.ErrCoupon* 或 *pricing.MinPurchaseError），其它为系统错误
func (s *CouponService) Validate(code string, subtotal decimal.Decimal) (*CouponValidation, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	result := &CouponValidation{Code: normalized}
	coupon, err := s.couponRepo.GetByCode(normalized)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		result.Reason = pricing.ErrCouponNotFound.Error()
		metrics.RecordCouponRejection(couponRejectionLabel(pricing.ErrCouponNotFound))
		return result, pricing.ErrCouponNotFound
	}
	result.Coupon = coupon
	result.Code = coupon.Code
	result.Type = coupon.Type
	result.Value = coupon.Value

	rule := toPricingCoupon(coupon)
	if err := pricing.ValidateCoupon(rule, subtotal, s.now()); err != nil {
		result.Reason = err.Error()
		metrics.RecordCouponRejection(couponRejectionLabel(err))
		return result, err
	}
	result.Valid = true
	result.Discount = models.NewMoneyFromDecimal(pricing.Discount(rule, pricing.Round(subtotal)))
	return result, nil
}

// List 后台优惠券列表
func (s *CouponService) List(filter repository.CouponListFilter) ([]models.Coupon, int64, error) {
	return s.couponRepo.List(filter)
}

// Get 获取优惠券
func (s *CouponService) Get(id uint) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}

// Create 创建优惠券，优惠码统一大写
func (s *CouponService) Create(input CouponInput) (*models.Coupon, error) {
	coupon := &models.Coupon{}
	if err := s.applyCouponInput(coupon, 0, input); err != nil {
		return nil, err
	}
	if err := s.couponRepo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Update 更新优惠券（保留已使用次数）
func (s *CouponService) Update(id uint, input CouponInput) (*models.Coupon, error) {
	coupon, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.applyCouponInput(coupon, id, input); err != nil {
		return nil, err
	}
	if err := s.couponRepo.Update(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Delete 删除优惠券
func (s *CouponService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.couponRepo.Delete(id)
}

// ListUsages 优惠券使用记录
func (s *CouponService) ListUsages(couponID uint, page, pageSize int) ([]repository.CouponUsageRow, int64, error) {
	if _, err := s.Get(couponID); err != nil {
		return nil, 0, err
	}
	return s.usageRepo.ListByCoupon(couponID, page, pageSize)
}

// DeactivateExpired 停用已过期的优惠券，返回停用数量
func (s *CouponService) DeactivateExpired() (int64, error) {
	count, err := s.couponRepo.DeactivateExpired(s.now())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Infow("coupon_expired_deactivated", "count", count)
		metrics.RecordCouponsDeactivated(count)
		invalidatePublicCache()
	}
	return count, nil
}

func (s *CouponService) applyCouponInput(coupon *models.Coupon, excludeID uint, input CouponInput) error {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return ErrInvalidInput
	}
	couponType := strings.ToUpper(strings.TrimSpace(input.Type))
	if couponType != constants.CouponTypePercentage && couponType != constants.CouponTypeFixed {
		return ErrCouponTypeInvalid
	}
	value := input.Value.Round(2)
	if !value.IsPositive() {
		return ErrInvalidInput
	}
	if couponType == constants.CouponTypePercentage && value.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidInput
	}
	if input.MinPurchase.IsNegative() {
		return ErrInvalidInput
	}
	if input.MaxDiscount != nil && input.MaxDiscount.IsNegative() {
		return ErrInvalidInput
	}
	if input.UsageLimit != nil && *input.UsageLimit < 0 {
		return ErrInvalidInput
	}
	if input.ValidFrom.IsZero() || input.ValidTo.IsZero() || input.ValidTo.Before(input.ValidFrom) {
		return ErrInvalidDateRange
	}
	count, err := s.couponRepo.CountByCode(code, excludeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCodeExists
	}

	coupon.Code = code
	coupon.Description = strings.TrimSpace(input.Description)
	coupon.Type = couponType
	coupon.Value = models.NewMoneyFromDecimal(value)
	coupon.MinPurchase = models.NewMoneyFromDecimal(input.MinPurchase)
	coupon.MaxDiscount = nil
	if input.MaxDiscount != nil {
		coupon.MaxDiscount = models.MoneyPtr(*input.MaxDiscount)
	}
	coupon.UsageLimit = input.UsageLimit
	coupon.ValidFrom = input.ValidFrom
	coupon.ValidTo = input.ValidTo
	coupon.Active = input.Active
	return nil
}

// couponRejectionLabel 拒绝原因的指标标签
func couponRejectionLabel(err error) string {
	switch {
	case errors.Is(err, ErrCouponNotFound):
		return "not_found"
	case errors.Is(err, ErrCouponInactive):
		return "inactive"
	case errors.Is(err, ErrCouponNotYetValid):
		return "not_yet_valid"
	case errors.Is(err, ErrCouponExpired):
		return "expired"
	case errors.Is(err, ErrCouponUsageExceeded):
		return "usage_exceeded"
	case errors.Is(err, ErrCouponMinPurchaseNotMet):
		return "min_purchase"
	default:
		return "unknown"
	}
}

// toPricingCoupon 转换为纯计算使用的优惠券规则
func toPricingCoupon(coupon *models.Coupon) *pricing.Coupon {
	if coupon == nil {
		return nil
	}
	rule := &pricing.Coupon{
		Code:        coupon.Code,
		Type:        coupon.Type,
		Value:       coupon.Value.Decimal,
		MinPurchase: coupon.MinPurchase.Decimal,
		UsageLimit:  coupon.UsageLimit,
		UsageCount:  coupon.UsageCount,
		ValidFrom:   coupon.ValidFrom,
		ValidTo:     coupon.ValidTo,
		Active:      coupon.Active,
	}
	if coupon.MaxDiscount != nil {
		maxDiscount := coupon.MaxDiscount.Decimal
		rule.MaxDiscount = &maxDiscount
	}
	return rule
}
