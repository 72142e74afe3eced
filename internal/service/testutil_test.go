package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// storeFixture 结算与下单测试所需的服务集合
type storeFixture struct {
	db       *gorm.DB
	category *models.Category
	coupons  *CouponService
	shipping *ShippingService
	checkout *CheckoutService
	orders   *OrderService
}

func newStoreFixture(t *testing.T) *storeFixture {
	t.Helper()
	db := openServiceTestDB(t)
	category := &models.Category{Name: "Fashion", Slug: "fashion", IsActive: true}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	couponRepo := repository.NewCouponRepository(db)
	usageRepo := repository.NewCouponUsageRepository(db)
	coupons := NewCouponService(couponRepo, usageRepo)
	shipping := NewShippingService(repository.NewShippingMethodRepository(db))
	checkout := NewCheckoutService(repository.NewProductRepository(db), coupons, shipping)
	orders := NewOrderService(db, repository.NewOrderRepository(db), couponRepo, usageRepo, checkout, nil)
	return &storeFixture{
		db:       db,
		category: category,
		coupons:  coupons,
		shipping: shipping,
		checkout: checkout,
		orders:   orders,
	}
}

func (f *storeFixture) createProduct(t *testing.T, slug, price string, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID: f.category.ID,
		Name:       strings.ToUpper(slug[:1]) + slug[1:],
		Slug:       slug,
		Price:      models.MustMoney(price),
		Images:     models.StringArray{"/uploads/" + slug + ".jpg"},
		IsActive:   active,
	}
	if err := f.db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func (f *storeFixture) createVariant(t *testing.T, productID uint, name, price string, active bool) *models.ProductVariant {
	t.Helper()
	variant := &models.ProductVariant{
		ProductID: productID,
		Name:      name,
		Price:     models.MustMoney(price),
		IsActive:  active,
	}
	if err := f.db.Create(variant).Error; err != nil {
		t.Fatalf("create variant failed: %v", err)
	}
	return variant
}

func (f *storeFixture) createCoupon(t *testing.T, coupon models.Coupon) *models.Coupon {
	t.Helper()
	if coupon.ValidFrom.IsZero() {
		coupon.ValidFrom = time.Now().Add(-24 * time.Hour)
	}
	if coupon.ValidTo.IsZero() {
		coupon.ValidTo = time.Now().Add(24 * time.Hour)
	}
	if err := f.db.Create(&coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}
	return &coupon
}

func (f *storeFixture) createWelcomeCoupon(t *testing.T) *models.Coupon {
	t.Helper()
	return f.createCoupon(t, models.Coupon{
		Code:        "WELCOME10",
		Type:        constants.CouponTypePercentage,
		Value:       models.MustMoney("10"),
		MinPurchase: models.MustMoney("500"),
		Active:      true,
	})
}

func (f *storeFixture) createShippingMethod(t *testing.T, name, cost string) *models.ShippingMethod {
	t.Helper()
	method := &models.ShippingMethod{Name: name, Cost: models.MustMoney(cost), IsActive: true}
	if err := f.db.Create(method).Error; err != nil {
		t.Fatalf("create shipping method failed: %v", err)
	}
	return method
}

func uintPtr(v uint) *uint {
	return &v
}
