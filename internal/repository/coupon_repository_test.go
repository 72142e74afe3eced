package repository

import (
	"testing"
	"time"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
)

func createTestCoupon(t *testing.T, repo *GormCouponRepository, code string, validTo time.Time) *models.Coupon {
	t.Helper()
	coupon := &models.Coupon{
		Code:      code,
		Type:      constants.CouponTypePercentage,
		Value:     models.MustMoney("10"),
		ValidFrom: validTo.Add(-30 * 24 * time.Hour),
		ValidTo:   validTo,
		Active:    true,
	}
	if err := repo.Create(coupon); err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}
	return coupon
}

func TestCouponGetByCodeIgnoresCase(t *testing.T) {
	repo := NewCouponRepository(openRepositoryTestDB(t))
	createTestCoupon(t, repo, "WELCOME10", time.Now().Add(24*time.Hour))

	got, err := repo.GetByCode(" welcome10 ")
	if err != nil {
		t.Fatalf("get by code failed: %v", err)
	}
	if got == nil || got.Code != "WELCOME10" {
		t.Fatalf("want WELCOME10 got %+v", got)
	}

	count, err := repo.CountByCode("Welcome10", 0)
	if err != nil {
		t.Fatalf("count by code failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count by code want 1 got %d", count)
	}
}

func TestCouponIncrementUsageCount(t *testing.T) {
	repo := NewCouponRepository(openRepositoryTestDB(t))
	coupon := createTestCoupon(t, repo, "EID50", time.Now().Add(24*time.Hour))

	for i := 0; i < 2; i++ {
		if err := repo.IncrementUsageCount(coupon.ID, 1); err != nil {
			t.Fatalf("increment usage failed: %v", err)
		}
	}
	got, err := repo.GetByID(coupon.ID)
	if err != nil {
		t.Fatalf("get coupon failed: %v", err)
	}
	if got.UsageCount != 2 {
		t.Fatalf("usage count want 2 got %d", got.UsageCount)
	}
}

func TestCouponDeactivateExpired(t *testing.T) {
	repo := NewCouponRepository(openRepositoryTestDB(t))
	now := time.Now()
	expired := createTestCoupon(t, repo, "OLD", now.Add(-time.Hour))
	live := createTestCoupon(t, repo, "LIVE", now.Add(time.Hour))

	affected, err := repo.DeactivateExpired(now)
	if err != nil {
		t.Fatalf("deactivate expired failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected want 1 got %d", affected)
	}
	gotExpired, _ := repo.GetByID(expired.ID)
	gotLive, _ := repo.GetByID(live.ID)
	if gotExpired.Active {
		t.Fatalf("expired coupon should be inactive")
	}
	if !gotLive.Active {
		t.Fatalf("live coupon should stay active")
	}
}
