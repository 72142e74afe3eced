package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/i18n"
	"github.com/bazaar-next/internal/logger"
	"github.com/bazaar-next/internal/metrics"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/queue"
	"github.com/bazaar-next/internal/repository"

	"gorm.io/gorm"
)

// OrderService 订单服务：下单、查询与后台处理
type OrderService struct {
	db              *gorm.DB
	orderRepo       repository.OrderRepository
	couponRepo      repository.CouponRepository
	couponUsageRepo repository.CouponUsageRepository
	checkout        *CheckoutService
	queueClient     *queue.Client
	now             func() time.Time
}

// NewOrderService 创建订单服务
func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	couponRepo repository.CouponRepository,
	couponUsageRepo repository.CouponUsageRepository,
	checkout *CheckoutService,
	queueClient *queue.Client,
) *OrderService {
	return &OrderService{
		db:              db,
		orderRepo:       orderRepo,
		couponRepo:      couponRepo,
		couponUsageRepo: couponUsageRepo,
		checkout:        checkout,
		queueClient:     queueClient,
		now:             time.Now,
	}
}

// PlaceOrderInput 下单输入
type PlaceOrderInput struct {
	UserID           *uint
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	ShippingAddress  string
	City             string
	Area             string
	PostalCode       string
	Note             string
	PaymentMethod    string
	Items            []CheckoutItemInput
	CouponCode       string
	ShippingMethodID uint
	ClientIP         string
	Locale           string
}

// Place 创建订单：服务端定价，单事务写入订单、订单项与优惠券使用记录
func (s *OrderService) Place(input PlaceOrderInput) (*models.Order, error) {
	contact, err := normalizeOrderContact(input)
	if err != nil {
		return nil, err
	}
	quote, err := s.checkout.build(QuoteInput{
		Items:            input.Items,
		CouponCode:       input.CouponCode,
		ShippingMethodID: input.ShippingMethodID,
	}, true)
	if err != nil {
		return nil, err
	}
	orderNumber, err := s.generateUniqueOrderNumber()
	if err != nil {
		return nil, err
	}

	now := s.now()
	order := &models.Order{
		OrderNumber:     orderNumber,
		UserID:          input.UserID,
		CustomerName:    contact.CustomerName,
		CustomerEmail:   contact.CustomerEmail,
		CustomerPhone:   contact.CustomerPhone,
		ShippingAddress: contact.ShippingAddress,
		City:            contact.City,
		Area:            contact.Area,
		PostalCode:      contact.PostalCode,
		Note:            contact.Note,
		Status:          constants.OrderStatusPending,
		PaymentStatus:   constants.PaymentStatusPending,
		PaymentMethod:   contact.PaymentMethod,
		Subtotal:        quote.Subtotal,
		Discount:        quote.Discount,
		ShippingCost:    quote.ShippingCost,
		Total:           quote.Total,
		Currency:        constants.SiteCurrencyDefault,
		ClientIP:        strings.TrimSpace(input.ClientIP),
		Locale:          i18n.NormalizeLocale(input.Locale),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if quote.ShippingMethod != nil {
		methodID := quote.ShippingMethod.ID
		order.ShippingMethodID = &methodID
		order.ShippingMethodName = quote.ShippingMethod.Name
	}
	var appliedCoupon *models.Coupon
	if quote.Coupon != nil && quote.Coupon.Coupon != nil {
		appliedCoupon = quote.Coupon.Coupon
		couponID := appliedCoupon.ID
		order.CouponID = &couponID
		order.CouponCode = appliedCoupon.Code
	}

	items := make([]models.OrderItem, 0, len(quote.Items))
	for _, line := range quote.Items {
		items = append(items, models.OrderItem{
			ProductID:   line.ProductID,
			VariantID:   line.VariantID,
			ProductName: line.ProductName,
			VariantName: line.VariantName,
			ProductSlug: line.ProductSlug,
			Image:       line.Image,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			LineTotal:   line.LineTotal,
			CreatedAt:   now,
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, items); err != nil {
			return err
		}
		if appliedCoupon == nil {
			return nil
		}
		usage := &models.CouponUsage{
			CouponID:       appliedCoupon.ID,
			OrderID:        order.ID,
			CustomerEmail:  order.CustomerEmail,
			DiscountAmount: order.Discount,
			CreatedAt:      now,
		}
		if err := s.couponUsageRepo.WithTx(tx).Create(usage); err != nil {
			return err
		}
		return s.couponRepo.WithTx(tx).IncrementUsageCount(appliedCoupon.ID, 1)
	})
	if err != nil {
		logger.Errorw("order_create_failed", "order_number", orderNumber, "error", err)
		return nil, ErrOrderCreateFailed
	}

	logger.Infow("order_placed",
		"order_id", order.ID,
		"order_number", order.OrderNumber,
		"total", order.Total.String(),
		"coupon_code", order.CouponCode,
	)
	metrics.RecordOrderPlaced(order.PaymentMethod, order.Total.InexactFloat64())
	s.enqueueOrderPlacedEmail(order)
	return order, nil
}

// Track 订单号 + 下单邮箱查询订单
func (s *OrderService) Track(orderNumber, email string) (*models.Order, error) {
	orderNumber = strings.ToUpper(strings.TrimSpace(orderNumber))
	email = strings.TrimSpace(email)
	if orderNumber == "" || email == "" {
		return nil, ErrInvalidInput
	}
	order, err := s.orderRepo.GetByOrderNumberAndEmail(orderNumber, email)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListUserOrders 顾客订单列表
func (s *OrderService) ListUserOrders(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	return s.orderRepo.ListByUser(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
	})
}

// GetUserOrder 顾客按订单号获取本人订单
func (s *OrderService) GetUserOrder(userID uint, orderNumber string) (*models.Order, error) {
	order, err := s.orderRepo.GetByOrderNumberAndUser(strings.ToUpper(strings.TrimSpace(orderNumber)), userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListAdmin 后台订单列表
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// GetAdmin 后台订单详情
func (s *OrderService) GetAdmin(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatus 后台设置订单状态（不校验流转），变更后按需推送状态邮件
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if !containsString(constants.OrderStatuses, status) {
		return nil, ErrInvalidStatus
	}
	order, err := s.GetAdmin(id)
	if err != nil {
		return nil, err
	}
	if order.Status == status {
		return order, nil
	}
	now := s.now()
	if err := s.orderRepo.UpdateFields(id, map[string]interface{}{
		"status":            status,
		"status_changed_at": now,
		"updated_at":        now,
	}); err != nil {
		return nil, err
	}
	previous := order.Status
	order.Status = status
	order.StatusChangedAt = &now
	order.UpdatedAt = now
	logger.Infow("order_status_updated",
		"order_id", order.ID,
		"order_number", order.OrderNumber,
		"from", previous,
		"to", status,
	)

	skipped, err := enqueueOrderStatusEmailTaskIfEligible(s.queueClient, order, status)
	if err != nil {
		logger.Warnw("order_status_email_enqueue_failed", "order_id", order.ID, "status", status, "error", err)
	} else if skipped {
		logger.Debugw("order_status_email_skipped", "order_id", order.ID, "status", status)
	}
	return order, nil
}

// UpdatePaymentStatus 后台设置支付状态
func (s *OrderService) UpdatePaymentStatus(id uint, paymentStatus string) (*models.Order, error) {
	paymentStatus = strings.ToUpper(strings.TrimSpace(paymentStatus))
	if !containsString(constants.PaymentStatuses, paymentStatus) {
		return nil, ErrInvalidPaymentStatus
	}
	order, err := s.GetAdmin(id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if err := s.orderRepo.UpdateFields(id, map[string]interface{}{
		"payment_status": paymentStatus,
		"updated_at":     now,
	}); err != nil {
		return nil, err
	}
	order.PaymentStatus = paymentStatus
	order.UpdatedAt = now
	return order, nil
}

// Delete 删除订单，同时移除优惠券使用记录并回退使用次数
func (s *OrderService) Delete(id uint) error {
	order, err := s.GetAdmin(id)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if order.CouponID != nil {
			removed, err := s.couponUsageRepo.WithTx(tx).DeleteByOrderID(order.ID)
			if err != nil {
				return err
			}
			if removed > 0 {
				if err := s.couponRepo.WithTx(tx).IncrementUsageCount(*order.CouponID, -int(removed)); err != nil {
					return err
				}
			}
		}
		return s.orderRepo.WithTx(tx).Delete(order.ID)
	})
}

func (s *OrderService) enqueueOrderPlacedEmail(order *models.Order) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		logger.Infow("order_placed_email_skipped", "order_id", order.ID, "reason", "queue_disabled")
		return
	}
	if err := s.queueClient.EnqueueOrderPlacedEmail(queue.OrderPlacedEmailPayload{
		OrderID: order.ID,
		Locale:  order.Locale,
	}); err != nil {
		logger.Warnw("order_placed_email_enqueue_failed",
			"order_id", order.ID,
			"order_number", order.OrderNumber,
			"error", err,
		)
	}
}

// generateUniqueOrderNumber 生成订单号，冲突时重试
func (s *OrderService) generateUniqueOrderNumber() (string, error) {
	for attempt := 0; attempt < constants.OrderNumberMaxAttempts; attempt++ {
		candidate := generateOrderNumber(s.now())
		exists, err := s.orderRepo.ExistsOrderNumber(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		logger.Warnw("order_number_collision", "order_number", candidate, "attempt", attempt+1)
	}
	return "", ErrOrderNumberExhausted
}

// generateOrderNumber 订单号：BD + yyMMdd + 6 位随机数
func generateOrderNumber(now time.Time) string {
	return constants.OrderNumberPrefix + now.Format("060102") + randNumeric(6)
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}

type orderContact struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	City            string
	Area            string
	PostalCode      string
	Note            string
	PaymentMethod   string
}

func normalizeOrderContact(input PlaceOrderInput) (orderContact, error) {
	contact := orderContact{
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
		City:            strings.TrimSpace(input.City),
		Area:            strings.TrimSpace(input.Area),
		PostalCode:      strings.TrimSpace(input.PostalCode),
		Note:            strings.TrimSpace(input.Note),
		PaymentMethod:   strings.ToUpper(strings.TrimSpace(input.PaymentMethod)),
	}
	if contact.CustomerName == "" || contact.CustomerPhone == "" || contact.ShippingAddress == "" {
		return contact, ErrInvalidInput
	}
	email, err := NormalizeEmail(input.CustomerEmail)
	if err != nil {
		return contact, err
	}
	contact.CustomerEmail = email
	if contact.PaymentMethod == "" {
		contact.PaymentMethod = constants.PaymentMethodCOD
	}
	if !containsString(constants.PaymentMethods, contact.PaymentMethod) {
		return contact, ErrInvalidPaymentMethod
	}
	return contact, nil
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
