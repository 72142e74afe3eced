package repository

import (
	"testing"

	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
)

func createTestOrder(t *testing.T, repo *GormOrderRepository, number, email string, userID *uint) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNumber:     number,
		UserID:          userID,
		CustomerName:    "Rahim",
		CustomerEmail:   email,
		CustomerPhone:   "01712345678",
		ShippingAddress: "House 1, Road 2",
		Status:          constants.OrderStatusPending,
		PaymentStatus:   constants.PaymentStatusPending,
		PaymentMethod:   constants.PaymentMethodCOD,
		Subtotal:        models.MustMoney("1500"),
		Total:           models.MustMoney("1500"),
		Currency:        constants.SiteCurrencyDefault,
	}
	items := []models.OrderItem{
		{ProductID: 1, ProductName: "Jamdani", UnitPrice: models.MustMoney("750"), Quantity: 2, LineTotal: models.MustMoney("1500")},
	}
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestOrderTrackByNumberAndEmail(t *testing.T) {
	repo := NewOrderRepository(openRepositoryTestDB(t))
	order := createTestOrder(t, repo, "BD250114482913", "Rahim@Example.com", nil)
	if len(order.Items) != 1 || order.Items[0].OrderID != order.ID {
		t.Fatalf("items should be linked to created order")
	}

	got, err := repo.GetByOrderNumberAndEmail("BD250114482913", "rahim@example.COM")
	if err != nil {
		t.Fatalf("track order failed: %v", err)
	}
	if got == nil || len(got.Items) != 1 {
		t.Fatalf("tracked order should include items, got %+v", got)
	}

	wrong, err := repo.GetByOrderNumberAndEmail("BD250114482913", "other@example.com")
	if err != nil {
		t.Fatalf("track order with wrong email failed: %v", err)
	}
	if wrong != nil {
		t.Fatalf("wrong email should not match")
	}

	exists, err := repo.ExistsOrderNumber("BD250114482913")
	if err != nil || !exists {
		t.Fatalf("order number should exist, got %v %v", exists, err)
	}
}

func TestOrderListAdminFilters(t *testing.T) {
	repo := NewOrderRepository(openRepositoryTestDB(t))
	userID := uint(7)
	createTestOrder(t, repo, "BD250114000001", "a@example.com", &userID)
	second := createTestOrder(t, repo, "BD250114000002", "b@example.com", nil)
	if err := repo.UpdateFields(second.ID, map[string]interface{}{"status": constants.OrderStatusShipped}); err != nil {
		t.Fatalf("update order status failed: %v", err)
	}

	orders, total, err := repo.ListAdmin(OrderListFilter{Status: constants.OrderStatusShipped, Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("list admin orders failed: %v", err)
	}
	if total != 1 || orders[0].OrderNumber != "BD250114000002" {
		t.Fatalf("status filter mismatch total=%d", total)
	}

	orders, total, err = repo.ListByUser(OrderListFilter{UserID: userID, Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("list user orders failed: %v", err)
	}
	if total != 1 || orders[0].OrderNumber != "BD250114000001" {
		t.Fatalf("user filter mismatch total=%d", total)
	}

	if err := repo.Delete(second.ID); err != nil {
		t.Fatalf("delete order failed: %v", err)
	}
	deleted, err := repo.GetByID(second.ID)
	if err != nil || deleted != nil {
		t.Fatalf("deleted order should be gone, got %v %v", deleted, err)
	}
}
