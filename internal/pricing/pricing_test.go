package pricing

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(raw string) decimal.Decimal {
	return decimal.RequireFromString(raw)
}

func decPtr(raw string) *decimal.Decimal {
	d := dec(raw)
	return &d
}

func welcome10(now time.Time) *Coupon {
	return &Coupon{
		Code:        "WELCOME10",
		Type:        CouponTypePercentage,
		Value:       dec("10"),
		MinPurchase: dec("1000"),
		MaxDiscount: decPtr("500"),
		ValidFrom:   now.Add(-24 * time.Hour),
		ValidTo:     now.Add(24 * time.Hour),
		Active:      true,
	}
}

func TestComputeWelcomeExample(t *testing.T) {
	now := time.Now()
	coupon := welcome10(now)
	require.NoError(t, ValidateCoupon(coupon, dec("1500"), now))

	got := Compute(dec("1500"), coupon, dec("60"))
	assert.Equal(t, "1500.00", got.Subtotal.StringFixed(2))
	assert.Equal(t, "150.00", got.Discount.StringFixed(2))
	assert.Equal(t, "60.00", got.ShippingCost.StringFixed(2))
	assert.Equal(t, "1410.00", got.Total.StringFixed(2))
}

func TestValidateCouponOrderAndReasons(t *testing.T) {
	now := time.Now()
	limit := 3
	cases := []struct {
		name string
		mutate   func(c *Coupon)
		subtotal string
		want     error
		message  string
	}{
		{name: "inactive wins over expiry", mutate: func(c *Coupon) { c.Active = false; c.ValidTo = now.Add(-time.Hour) }, subtotal: "1500", want: ErrCouponInactive, message: "coupon is not active"},
		{name: "not yet valid", mutate: func(c *Coupon) { c.ValidFrom = now.Add(time.Hour) }, subtotal: "1500", want: ErrCouponNotYetValid, message: "coupon is not yet valid"},
		{name: "expired", mutate: func(c *Coupon) { c.ValidTo = now.Add(-time.Hour) }, subtotal: "1500", want: ErrCouponExpired, message: "coupon has expired"},
		{name: "usage limit", mutate: func(c *Coupon) { c.UsageLimit = &limit; c.UsageCount = 3 }, subtotal: "1500", want: ErrCouponUsageExceeded, message: "coupon usage limit reached"},
		{name: "usage checked before minimum", mutate: func(c *Coupon) { c.UsageLimit = &limit; c.UsageCount = 5 }, subtotal: "10", want: ErrCouponUsageExceeded, message: "coupon usage limit reached"},
		{name: "minimum purchase", mutate: func(c *Coupon) {}, subtotal: "999.99", want: ErrMinPurchaseNotMet, message: "minimum purchase not met (requires ৳1000.00)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			coupon := welcome10(now)
			tc.mutate(coupon)
			err := ValidateCoupon(coupon, dec(tc.subtotal), now)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "want %v got %v", tc.want, err)
			assert.Equal(t, tc.message, err.Error())
		})
	}

	assert.ErrorIs(t, ValidateCoupon(nil, dec("100"), now), ErrCouponNotFound)
}

func TestValidateCouponBoundariesInclusive(t *testing.T) {
	now := time.Now()
	coupon := welcome10(now)
	coupon.ValidFrom = now
	coupon.ValidTo = now
	assert.NoError(t, ValidateCoupon(coupon, dec("1000"), now))
}

func TestDiscountFixedCappedAtSubtotal(t *testing.T) {
	coupon := &Coupon{Type: CouponTypeFixed, Value: dec("300")}
	assert.Equal(t, "200.00", Discount(coupon, dec("200")).StringFixed(2))
	assert.Equal(t, "300.00", Discount(coupon, dec("1200")).StringFixed(2))
}

func TestDiscountPercentageWithoutCap(t *testing.T) {
	coupon := &Coupon{Type: CouponTypePercentage, Value: dec("15"), MaxDiscount: decPtr("0")}
	assert.Equal(t, "1500.00", Discount(coupon, dec("10000")).StringFixed(2))
}

func TestComputeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(20250114))
	for i := 0; i < 500; i++ {
		subtotal := decimal.New(rng.Int63n(10_000_000), -2)
		shipping := decimal.New(rng.Int63n(50_000), -2)
		maxDiscount := decimal.New(rng.Int63n(100_000), -2)
		coupon := &Coupon{Type: CouponTypePercentage, Value: decimal.NewFromInt(rng.Int63n(101)), MaxDiscount: &maxDiscount}
		if rng.Intn(2) == 0 {
			coupon = &Coupon{Type: CouponTypeFixed, Value: decimal.New(rng.Int63n(200_000), -2)}
		}

		got := Compute(subtotal, coupon, shipping)
		require.True(t, got.Total.Equal(got.Subtotal.Sub(got.Discount).Add(got.ShippingCost)),
			"total mismatch for subtotal=%s discount=%s shipping=%s", got.Subtotal, got.Discount, got.ShippingCost)
		require.False(t, got.Discount.GreaterThan(got.Subtotal), "discount exceeds subtotal")
		require.False(t, got.Discount.IsNegative(), "negative discount")
		if coupon.Type == CouponTypePercentage && maxDiscount.IsPositive() {
			require.False(t, got.Discount.GreaterThan(maxDiscount), "percentage discount exceeds cap")
		}
		require.False(t, got.Total.LessThan(got.ShippingCost), "total below shipping")
	}
}

func TestShippingAvailable(t *testing.T) {
	assert.True(t, ShippingAvailable(nil, nil, dec("0")))
	assert.True(t, ShippingAvailable(decPtr("500"), decPtr("5000"), dec("500")))
	assert.True(t, ShippingAvailable(decPtr("500"), decPtr("5000"), dec("5000")))
	assert.False(t, ShippingAvailable(decPtr("500"), nil, dec("499.99")))
	assert.False(t, ShippingAvailable(nil, decPtr("5000"), dec("5000.01")))
}

func TestLineTotalAndSubtotal(t *testing.T) {
	lines := []decimal.Decimal{LineTotal(dec("750"), 2), LineTotal(dec("99.995"), 1)}
	assert.Equal(t, "1600.00", Subtotal(lines...).StringFixed(2))
}
