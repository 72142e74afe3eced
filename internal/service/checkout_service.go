package service

import (
	"fmt"
	"strings"

	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/pricing"
	"github.com/bazaar-next/internal/repository"

	"github.com/shopspring/decimal"
)

const (
	// maxCheckoutLines 单次结算最多商品行数
	maxCheckoutLines = 100
	// MaxLineQuantity 单行（合并后）最大购买数量
	MaxLineQuantity = 9999
)

// CheckoutItemInput 购物车商品行
type CheckoutItemInput struct {
	ProductID uint
	VariantID *uint
	Quantity  int
	UnitPrice *decimal.Decimal // 加购时客户端记录的单价，仅用于比对
}

// CheckoutLine 服务端定价后的商品行
type CheckoutLine struct {
	ProductID   uint         `json:"product_id"`
	VariantID   *uint        `json:"variant_id,omitempty"`
	ProductName string       `json:"product_name"`
	VariantName string       `json:"variant_name,omitempty"`
	ProductSlug string       `json:"product_slug"`
	Image       string       `json:"image"`
	UnitPrice   models.Money `json:"unit_price"`
	Quantity    int          `json:"quantity"`
	LineTotal   models.Money `json:"line_total"`
}

// QuoteInput 报价输入
type QuoteInput struct {
	Items            []CheckoutItemInput
	CouponCode       string
	ShippingMethodID uint
}

// CheckoutQuote 报价结果
type CheckoutQuote struct {
	Items          []CheckoutLine         `json:"items"`
	Subtotal       models.Money           `json:"subtotal"`
	Discount       models.Money           `json:"discount"`
	ShippingCost   models.Money           `json:"shipping_cost"`
	Total          models.Money           `json:"total"`
	Coupon         *CouponValidation      `json:"coupon,omitempty"`
	ShippingMethod *models.ShippingMethod `json:"shipping_method,omitempty"`
	CouponError    string                 `json:"coupon_error,omitempty"`
}

// CheckoutService 结算服务：服务端定价、优惠券与运费计算
type CheckoutService struct {
	productRepo     repository.ProductRepository
	couponService   *CouponService
	shippingService *ShippingService
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(productRepo repository.ProductRepository, couponService *CouponService, shippingService *ShippingService) *CheckoutService {
	return &CheckoutService{
		productRepo:     productRepo,
		couponService:   couponService,
		shippingService: shippingService,
	}
}

// Quote 计算报价；优惠券无效不影响报价，原因写入 CouponError
func (s *CheckoutService) Quote(input QuoteInput) (*CheckoutQuote, error) {
	return s.build(input, false)
}

// build 计算结算明细，strict 为下单模式：优惠券无效直接返回拒绝原因，且存在启用配送方式时必须选择
func (s *CheckoutService) build(input QuoteInput, strict bool) (*CheckoutQuote, error) {
	lines, err := s.resolveLines(input.Items)
	if err != nil {
		return nil, err
	}
	lineTotals := make([]decimal.Decimal, 0, len(lines))
	for _, line := range lines {
		lineTotals = append(lineTotals, line.LineTotal.Decimal)
	}
	subtotal := pricing.Subtotal(lineTotals...)
	quote := &CheckoutQuote{Items: lines}

	var rule *pricing.Coupon
	if code := strings.TrimSpace(input.CouponCode); code != "" {
		validation, err := s.couponService.Validate(code, subtotal)
		switch {
		case err == nil:
			quote.Coupon = validation
			rule = toPricingCoupon(validation.Coupon)
		case IsCouponRejection(err):
			if strict {
				return nil, err
			}
			quote.CouponError = err.Error()
		default:
			return nil, err
		}
	}

	shippingCost := decimal.Zero
	if input.ShippingMethodID > 0 {
		method, err := s.shippingService.Resolve(input.ShippingMethodID, subtotal)
		if err != nil {
			return nil, err
		}
		quote.ShippingMethod = method
		shippingCost = method.Cost.Decimal
	} else if strict {
		hasActive, err := s.shippingService.HasActive()
		if err != nil {
			return nil, err
		}
		if hasActive {
			return nil, ErrShippingMethodRequired
		}
	}

	breakdown := pricing.Compute(subtotal, rule, shippingCost)
	quote.Subtotal = models.NewMoneyFromDecimal(breakdown.Subtotal)
	quote.Discount = models.NewMoneyFromDecimal(breakdown.Discount)
	quote.ShippingCost = models.NewMoneyFromDecimal(breakdown.ShippingCost)
	quote.Total = models.NewMoneyFromDecimal(breakdown.Total)
	if quote.Coupon != nil {
		quote.Coupon.Discount = quote.Discount
	}
	return quote, nil
}

// resolveLines 合并重复行并按服务端价格定价
func (s *CheckoutService) resolveLines(items []CheckoutItemInput) ([]CheckoutLine, error) {
	merged, err := mergeCheckoutItems(items)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(merged))
	seen := make(map[uint]struct{}, len(merged))
	for _, item := range merged {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	products, err := s.productRepo.ListByIDs(ids, true)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uint]*models.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	lines := make([]CheckoutLine, 0, len(merged))
	for _, item := range merged {
		product, ok := productMap[item.ProductID]
		if !ok {
			return nil, ErrProductNotAvailable
		}
		line := CheckoutLine{
			ProductID:   product.ID,
			ProductName: product.Name,
			ProductSlug: product.Slug,
			Image:       firstImage(product.Images),
			Quantity:    item.Quantity,
		}
		unitPrice := product.Price.Decimal
		if item.VariantID != nil {
			variant := findActiveVariant(product, *item.VariantID)
			if variant == nil {
				return nil, ErrVariantNotAvailable
			}
			variantID := variant.ID
			line.VariantID = &variantID
			line.VariantName = variant.Name
			unitPrice = variant.Price.Decimal
			if variant.Image != "" {
				line.Image = variant.Image
			}
		}
		unitPrice = pricing.Round(unitPrice)
		if item.UnitPrice != nil && !pricing.Round(*item.UnitPrice).Equal(unitPrice) {
			logger.Warnw("checkout_client_price_mismatch",
				"product_id", product.ID,
				"variant_id", line.VariantID,
				"client_unit_price", item.UnitPrice.StringFixed(2),
				"unit_price", unitPrice.StringFixed(2),
			)
		}
		line.UnitPrice = models.NewMoneyFromDecimal(unitPrice)
		line.LineTotal = models.NewMoneyFromDecimal(pricing.LineTotal(unitPrice, item.Quantity))
		lines = append(lines, line)
	}
	return lines, nil
}

// mergeCheckoutItems 合并相同 (商品, 规格) 的行，数量累加
func mergeCheckoutItems(items []CheckoutItemInput) ([]CheckoutItemInput, error) {
	if len(items) == 0 || len(items) > maxCheckoutLines {
		return nil, ErrInvalidOrderItem
	}
	merged := make([]CheckoutItemInput, 0, len(items))
	indexMap := make(map[string]int, len(items))
	for _, item := range items {
		if item.ProductID == 0 || item.Quantity < 1 || item.Quantity > MaxLineQuantity {
			return nil, ErrInvalidOrderItem
		}
		if item.VariantID != nil && *item.VariantID == 0 {
			item.VariantID = nil
		}
		key := buildCheckoutItemKey(item.ProductID, item.VariantID)
		if idx, ok := indexMap[key]; ok {
			merged[idx].Quantity += item.Quantity
			if merged[idx].Quantity > MaxLineQuantity {
				return nil, ErrInvalidOrderItem
			}
			continue
		}
		indexMap[key] = len(merged)
		merged = append(merged, item)
	}
	return merged, nil
}

func buildCheckoutItemKey(productID uint, variantID *uint) string {
	if variantID == nil {
		return fmt.Sprintf("%d:0", productID)
	}
	return fmt.Sprintf("%d:%d", productID, *variantID)
}

func findActiveVariant(product *models.Product, variantID uint) *models.ProductVariant {
	for i := range product.Variants {
		variant := &product.Variants[i]
		if variant.ID == variantID && variant.ProductID == product.ID && variant.IsActive {
			return variant
		}
	}
	return nil
}

func firstImage(images models.StringArray) string {
	if len(images) == 0 {
		return ""
	}
	return images[0]
}
