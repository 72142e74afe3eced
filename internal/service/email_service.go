package service

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"net/url"
	"strings"

	"github.com/bazaar-next/internal/config"
	"github.com/bazaar-next/internal/i18n"
	"github.com/bazaar-next/internal/models"
	"github.com/bazaar-next/internal/pricing"
)

const defaultStoreName = "Bazaar"

// EmailService 邮件发送服务
type EmailService struct {
	cfg     *config.EmailConfig
	siteURL string
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig, siteURL string) *EmailService {
	return &EmailService{cfg: cfg, siteURL: strings.TrimRight(strings.TrimSpace(siteURL), "/")}
}

// Enabled 是否已启用邮件
func (s *EmailService) Enabled() bool {
	return s != nil && s.cfg != nil && s.cfg.Enabled
}

// SendOrderPlacedEmail 发送下单确认邮件，配置了管理员通知地址时密送一份
func (s *EmailService) SendOrderPlacedEmail(order *models.Order, locale string) error {
	if order == nil {
		return ErrOrderNotFound
	}
	subject, body := s.buildOrderPlacedContent(order, locale)
	var bcc []string
	if s.cfg != nil && strings.TrimSpace(s.cfg.AdminNotify) != "" {
		bcc = append(bcc, strings.TrimSpace(s.cfg.AdminNotify))
	}
	return s.sendTextEmail(order.CustomerEmail, bcc, subject, body)
}

// SendOrderStatusEmail 发送订单状态变更邮件
func (s *EmailService) SendOrderStatusEmail(order *models.Order, status, locale string) error {
	if order == nil {
		return ErrOrderNotFound
	}
	subject, body := s.buildOrderStatusContent(order, status, locale)
	return s.sendTextEmail(order.CustomerEmail, nil, subject, body)
}

func (s *EmailService) buildOrderPlacedContent(order *models.Order, locale string) (string, string) {
	locale = i18n.NormalizeLocale(locale)
	subject := i18n.Sprintf(locale, "email.order_placed.subject", order.OrderNumber)

	var buf strings.Builder
	buf.WriteString(i18n.Sprintf(locale, "email.order_placed.greeting", order.CustomerName))
	buf.WriteString("\n\n")
	buf.WriteString(i18n.Sprintf(locale, "email.order_placed.intro", order.OrderNumber))
	buf.WriteString("\n\n")
	buf.WriteString(i18n.T(locale, "email.order_placed.items"))
	buf.WriteString("\n")
	for _, item := range order.Items {
		name := item.ProductName
		if item.VariantName != "" {
			name = fmt.Sprintf("%s (%s)", name, item.VariantName)
		}
		buf.WriteString(fmt.Sprintf("- %s x%d  %s\n", name, item.Quantity, pricing.FormatAmount(item.LineTotal.Decimal)))
	}
	buf.WriteString("\n")
	writeAmountLine(&buf, i18n.T(locale, "email.order.subtotal"), order.Subtotal)
	if order.Discount.IsPositive() {
		line := i18n.T(locale, "email.order.discount")
		if order.CouponCode != "" {
			line = fmt.Sprintf("%s (%s)", line, order.CouponCode)
		}
		buf.WriteString(fmt.Sprintf("%s: -%s\n", line, pricing.FormatAmount(order.Discount.Decimal)))
	}
	writeAmountLine(&buf, i18n.T(locale, "email.order.shipping"), order.ShippingCost)
	writeAmountLine(&buf, i18n.T(locale, "email.order.total"), order.Total)
	buf.WriteString(fmt.Sprintf("%s: %s\n", i18n.T(locale, "email.order.payment_method"), order.PaymentMethod))
	s.appendFooter(&buf, order, locale)
	return subject, buf.String()
}

func (s *EmailService) buildOrderStatusContent(order *models.Order, status, locale string) (string, string) {
	locale = i18n.NormalizeLocale(locale)
	status = strings.ToUpper(strings.TrimSpace(status))
	labelKey := "email.order_status." + status
	label := i18n.T(locale, labelKey)
	if label == labelKey {
		label = strings.ToLower(status)
	}
	subject := i18n.Sprintf(locale, "email.order_status.subject", order.OrderNumber, label)

	var buf strings.Builder
	buf.WriteString(i18n.Sprintf(locale, "email.order_placed.greeting", order.CustomerName))
	buf.WriteString("\n\n")
	buf.WriteString(i18n.Sprintf(locale, "email.order_status.body", order.OrderNumber, label))
	buf.WriteString("\n\n")
	writeAmountLine(&buf, i18n.T(locale, "email.order.total"), order.Total)
	s.appendFooter(&buf, order, locale)
	return subject, buf.String()
}

func (s *EmailService) appendFooter(buf *strings.Builder, order *models.Order, locale string) {
	if s.siteURL != "" {
		query := url.Values{}
		query.Set("order_number", order.OrderNumber)
		buf.WriteString("\n")
		buf.WriteString(i18n.Sprintf(locale, "email.order.track_hint", s.siteURL+"/track-order?"+query.Encode()))
		buf.WriteString("\n")
	}
	buf.WriteString("\n")
	buf.WriteString(i18n.Sprintf(locale, "email.signature", s.storeName()))
}

func (s *EmailService) storeName() string {
	if s.cfg != nil && strings.TrimSpace(s.cfg.FromName) != "" {
		return strings.TrimSpace(s.cfg.FromName)
	}
	return defaultStoreName
}

func writeAmountLine(buf *strings.Builder, label string, amount models.Money) {
	buf.WriteString(fmt.Sprintf("%s: %s\n", label, pricing.FormatAmount(amount.Decimal)))
}

func (s *EmailService) sendTextEmail(toEmail string, bcc []string, subject, body string) error {
	if s.cfg == nil || !s.cfg.Enabled {
		return ErrEmailServiceDisabled
	}
	if s.cfg.Host == "" || s.cfg.Port == 0 || s.cfg.From == "" {
		return ErrEmailServiceNotConfigured
	}
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return ErrInvalidEmail
	}

	recipients := []string{toEmail}
	for _, addr := range bcc {
		if _, err := mail.ParseAddress(addr); err == nil && !strings.EqualFold(addr, toEmail) {
			recipients = append(recipients, addr)
		}
	}

	from := buildFromAddress(s.cfg.From, s.cfg.FromName)
	msg := buildEmailMessage(from, toEmail, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" || s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if s.cfg.UseSSL {
		return normalizeEmailSendError(sendMailWithSSL(addr, auth, s.cfg.Host, s.cfg.From, recipients, []byte(msg)))
	}
	if s.cfg.UseTLS {
		return normalizeEmailSendError(sendMailWithStartTLS(addr, auth, s.cfg.Host, s.cfg.From, recipients, []byte(msg)))
	}
	return normalizeEmailSendError(sendMailPlain(addr, auth, s.cfg.Host, s.cfg.From, recipients, []byte(msg)))
}

func buildFromAddress(from, name string) string {
	if strings.TrimSpace(name) == "" {
		return from
	}
	encoded := mime.QEncoding.Encode("UTF-8", name)
	return (&mail.Address{Name: encoded, Address: from}).String()
}

func buildEmailMessage(from, to, subject, body string) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("From: %s\r\n", from))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", to))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject)))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.String()
}

func sendMailWithSSL(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := smtpAuth(client, auth); err != nil {
		return err
	}
	return sendSMTPData(client, from, to, msg)
}

func sendMailWithStartTLS(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
		return err
	}
	if err := smtpAuth(client, auth); err != nil {
		return err
	}
	return sendSMTPData(client, from, to, msg)
}

func sendMailPlain(addr string, auth smtp.Auth, _ string, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := smtpAuth(client, auth); err != nil {
		return err
	}
	return sendSMTPData(client, from, to, msg)
}

func smtpAuth(client *smtp.Client, auth smtp.Auth) error {
	if auth == nil {
		return nil
	}
	if ok, _ := client.Extension("AUTH"); ok {
		return client.Auth(auth)
	}
	return nil
}

func sendSMTPData(client *smtp.Client, from string, to []string, msg []byte) error {
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func normalizeEmailSendError(err error) error {
	if err == nil {
		return nil
	}
	if isEmailRecipientRejected(err) {
		return ErrEmailRecipientRejected
	}
	return err
}

func isEmailRecipientRejected(err error) bool {
	if err == nil {
		return false
	}
	message := strings.ToLower(strings.TrimSpace(err.Error()))
	if message == "" {
		return false
	}
	directKeywords := []string{
		"no such recipient",
		"no such user",
		"recipient not found",
		"recipient address rejected",
		"invalid recipient",
		"user unknown",
		"unknown user",
		"mailbox unavailable",
	}
	for _, keyword := range directKeywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	if strings.Contains(message, "550") {
		for _, hint := range []string{"recipient", "user", "mailbox", "address", "rcpt"} {
			if strings.Contains(message, hint) {
				return true
			}
		}
	}
	return false
}
