package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/constants"
	"github.com/bazaar-next/internal/models"
)

func sampleEmailOrder() *models.Order {
	return &models.Order{
		OrderNumber:   "BD250114482913",
		CustomerName:  "Rahim",
		CustomerEmail: "rahim@example.com",
		PaymentMethod: constants.PaymentMethodCOD,
		Subtotal:      models.MustMoney("1500"),
		Discount:      models.MustMoney("150"),
		ShippingCost:  models.MustMoney("60"),
		Total:         models.MustMoney("1410"),
		CouponCode:    "WELCOME10",
		Items: []models.OrderItem{
			{ProductName: "Cotton Panjabi", VariantName: "L", Quantity: 2, LineTotal: models.MustMoney("1500")},
		},
	}
}

func TestBuildOrderPlacedContent(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{FromName: "Bazaar BD"}, "https://shop.example.com/")
	subject, body := svc.buildOrderPlacedContent(sampleEmailOrder(), constants.LocaleEnUS)

	if subject != "Order BD250114482913 received" {
		t.Fatalf("unexpected subject: %s", subject)
	}
	wants := []string{
		"Hi Rahim,",
		"- Cotton Panjabi (L) x2  ৳1500.00",
		"Discount (WELCOME10): -৳150.00",
		"Shipping: ৳60.00",
		"Total: ৳1410.00",
		"https://shop.example.com/track-order?order_number=BD250114482913",
		"Thanks for shopping with Bazaar BD.",
	}
	for _, want := range wants {
		if !strings.Contains(body, want) {
			t.Fatalf("body should contain %q, got:\n%s", want, body)
		}
	}
}

func TestBuildOrderStatusContentLocalized(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{}, "")
	subject, body := svc.buildOrderStatusContent(sampleEmailOrder(), constants.OrderStatusShipped, constants.LocaleBnBD)
	if !strings.Contains(subject, "পাঠানো হয়েছে") {
		t.Fatalf("subject should be localized, got %s", subject)
	}
	if !strings.Contains(body, "BD250114482913") {
		t.Fatalf("body should contain order number, got %s", body)
	}
	if strings.Contains(body, "track-order") {
		t.Fatalf("tracking link requires site url")
	}
}

func TestSendTextEmailGuards(t *testing.T) {
	disabled := NewEmailService(&config.EmailConfig{Enabled: false}, "")
	if err := disabled.SendOrderPlacedEmail(sampleEmailOrder(), ""); !errors.Is(err, ErrEmailServiceDisabled) {
		t.Fatalf("want ErrEmailServiceDisabled, got %v", err)
	}

	unconfigured := NewEmailService(&config.EmailConfig{Enabled: true}, "")
	if err := unconfigured.SendOrderPlacedEmail(sampleEmailOrder(), ""); !errors.Is(err, ErrEmailServiceNotConfigured) {
		t.Fatalf("want ErrEmailServiceNotConfigured, got %v", err)
	}

	configured := NewEmailService(&config.EmailConfig{Enabled: true, Host: "smtp.example.com", Port: 587, From: "shop@example.com"}, "")
	order := sampleEmailOrder()
	order.CustomerEmail = "not-an-email"
	if err := configured.SendOrderStatusEmail(order, constants.OrderStatusConfirmed, ""); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("want ErrInvalidEmail, got %v", err)
	}
}

func TestIsEmailRecipientRejected(t *testing.T) {
	cases := map[string]bool{
		"550 5.1.1 <x@y.com>: Recipient address rejected": true,
		"550 mailbox not found for user":                  true,
		"421 service not available":                       false,
	}
	for message, want := range cases {
		if got := isEmailRecipientRejected(errors.New(message)); got != want {
			t.Fatalf("isEmailRecipientRejected(%q) = %v, want %v", message, got, want)
		}
	}
}
