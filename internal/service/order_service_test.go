package service

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
)

var orderNumberPattern = regexp.MustCompile(`^BD\d{12}$`)

func samplePlaceOrderInput(items ...CheckoutItemInput) PlaceOrderInput {
	return PlaceOrderInput{
		CustomerName:    "Rahim Uddin",
		CustomerEmail:   " Rahim@Example.com ",
		CustomerPhone:   "01712345678",
		ShippingAddress: "House 12, Road 5, Dhanmondi",
		City:            "Dhaka",
		Items:           items,
		Locale:          "bn-BD",
	}
}

func TestPlaceOrderSnapshotsAndCouponUsage(t *testing.T) {
	f := newStoreFixture(t)
	product := f.createProduct(t, "panjabi", "750", true)
	coupon := f.createWelcomeCoupon(t)
	method := f.createShippingMethod(t, "Inside Dhaka", "60")

	input := samplePlaceOrderInput(CheckoutItemInput{ProductID: product.ID, Quantity: 2})
	input.CouponCode = "WELCOME10"
	input.ShippingMethodID = method.ID
	order, err := f.orders.Place(input)
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	if !orderNumberPattern.MatchString(order.OrderNumber) {
		t.Fatalf("unexpected order number: %s", order.OrderNumber)
	}
	if order.Status != constants.OrderStatusPending || order.PaymentStatus != constants.PaymentStatusPending {
		t.Fatalf("unexpected initial status: %s/%s", order.Status, order.PaymentStatus)
	}
	if order.PaymentMethod != constants.PaymentMethodCOD {
		t.Fatalf("payment method should default to COD, got %s", order.PaymentMethod)
	}
	if order.CustomerEmail != "rahim@example.com" {
		t.Fatalf("email should be normalized, got %s", order.CustomerEmail)
	}
	if order.Total.String() != "1410.00" || order.Discount.String() != "150.00" {
		t.Fatalf("unexpected totals: total=%s discount=%s", order.Total, order.Discount)
	}
	if order.ShippingMethodName != "Inside Dhaka" || order.CouponCode != "WELCOME10" {
		t.Fatalf("snapshot mismatch: %+v", order)
	}
	if order.Locale != constants.LocaleBnBD {
		t.Fatalf("unexpected locale: %s", order.Locale)
	}

	// 改价后订单快照不变
	if err := f.db.Model(&models.Product{}).Where("id = ?", product.ID).Update("price", models.MustMoney("999")).Error; err != nil {
		t.Fatalf("update price failed: %v", err)
	}
	stored, err := f.orders.Track(order.OrderNumber, "rahim@example.com")
	if err != nil {
		t.Fatalf("track order failed: %v", err)
	}
	if len(stored.Items) != 1 || stored.Items[0].UnitPrice.String() != "750.00" || stored.Items[0].ProductName != "Panjabi" {
		t.Fatalf("item snapshot mismatch: %+v", stored.Items)
	}

	var reloaded models.Coupon
	if err := f.db.First(&reloaded, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if reloaded.UsageCount != 1 {
		t.Fatalf("usage count should be 1, got %d", reloaded.UsageCount)
	}
	usages, total, err := f.coupons.ListUsages(coupon.ID, 1, 20)
	if err != nil {
		t.Fatalf("list usages failed: %v", err)
	}
	if total != 1 || usages[0].OrderID != order.ID || usages[0].OrderNumber != order.OrderNumber || usages[0].DiscountAmount.String() != "150.00" {
		t.Fatalf("unexpected usages: total=%d %+v", total, usages)
	}
}

func TestPlaceOrderRequiresShippingWhenMethodsExist(t *testing.T) {
	f := newStoreFixture(t)
	product := f.createProduct(t, "scarf", "200", true)
	f.createShippingMethod(t, "Outside Dhaka", "120")

	_, err := f.orders.Place(samplePlaceOrderInput(CheckoutItemInput{ProductID: product.ID, Quantity: 1}))
	if !errors.Is(err, ErrShippingMethodRequired) {
		t.Fatalf("expected ErrShippingMethodRequired, got %v", err)
	}
}

func TestPlaceOrderWithoutShippingMethods(t *testing.T) {
	f := newStoreFixture(t)
	product := f.createProduct(t, "scarf", "200", true)

	order, err := f.orders.Place(samplePlaceOrderInput(CheckoutItemInput{ProductID: product.ID, Quantity: 1}))
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if order.ShippingMethodID != nil || !order.ShippingCost.IsZero() {
		t.Fatalf("order should have no shipping, got %+v", order)
	}
}

func TestPlaceOrderRejectsInvalidCoupon(t *testing.T) {
	f := newStoreFixture(t)
	product := f.createProduct(t, "scarf", "200", true)
	f.createWelcomeCoupon(t)

	input := samplePlaceOrderInput(CheckoutItemInput{ProductID: product.ID, Quantity: 1})
	input.CouponCode = "WELCOME10"
	_, err := f.orders.Place(input)
	if !errors.Is(err, ErrCouponMinPurchaseNotMet) {
		t.Fatalf("expected min purchase rejection, got %v", err)
	}
	var count int64
	f.db.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Fatalf("no order should be written, got %d", count)
	}
}

func TestPlaceOrderValidatesContact(t *testing.T) {
	f := newStoreFixture(t)
	product := f.createProduct(t, "scarf", "200", true)

	missingPhone := samplePlaceOrderInput(CheckoutItemInput{ProductID: product.ID, Quantity: 1})
	missingPhone.CustomerPhone = " "
	if _, err := f.orders.Place(missingPhone); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	badMethod := samplePlaceOrderInput(CheckoutItemInput{ProductID: product.ID, Quantity: 1})
	badMethod.PaymentMethod = "crypto"
	if _, err := f.orders.Place(badMethod); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}
}

func TestOrderStatusAndDelete(t *testing.T) {
	f := newStoreFixture(t)
	product := f.createProduct(t, "panjabi", "750", true)
	coupon := f.createWelcomeCoupon(t)

	input := samplePlaceOrderInput(CheckoutItemInput{ProductID: product.ID, Quantity: 1})
	input.CouponCode = "WELCOME10"
	order, err := f.orders.Place(input)
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	if _, err := f.orders.UpdateStatus(order.ID, "teleported"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	updated, err := f.orders.UpdateStatus(order.ID, "shipped")
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.Status != constants.OrderStatusShipped || updated.StatusChangedAt == nil {
		t.Fatalf("unexpected status update: %+v", updated)
	}
	// 允许任意状态跳转
	if _, err := f.orders.UpdateStatus(order.ID, constants.OrderStatusPending); err != nil {
		t.Fatalf("backward status change should be allowed: %v", err)
	}
	if _, err := f.orders.UpdatePaymentStatus(order.ID, "paid"); err != nil {
		t.Fatalf("update payment status failed: %v", err)
	}

	if err := f.orders.Delete(order.ID); err != nil {
		t.Fatalf("delete order failed: %v", err)
	}
	if _, err := f.orders.GetAdmin(order.ID); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	var reloaded models.Coupon
	if err := f.db.First(&reloaded, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if reloaded.UsageCount != 0 {
		t.Fatalf("usage count should roll back to 0, got %d", reloaded.UsageCount)
	}
}

func TestTrackRequiresMatchingEmail(t *testing.T) {
	f := newStoreFixture(t)
	product := f.createProduct(t, "scarf", "200", true)
	order, err := f.orders.Place(samplePlaceOrderInput(CheckoutItemInput{ProductID: product.ID, Quantity: 1}))
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if _, err := f.orders.Track(order.OrderNumber, "someone@example.com"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if _, err := f.orders.Track(" "+order.OrderNumber, "RAHIM@example.com"); err != nil {
		t.Fatalf("track should be case-insensitive on email: %v", err)
	}
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	for i := 0; i < 20; i++ {
		number := generateOrderNumber(time.Now())
		if !orderNumberPattern.MatchString(number) {
			t.Fatalf("unexpected order number: %s", number)
		}
	}
}
