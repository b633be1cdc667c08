package email

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/vitrine-app/vitrine/internal/application/subscription/services"
	sharedConfig "github.com/vitrine-app/vitrine/internal/shared/config"
)

type SMTPMailer struct {
	cfg    sharedConfig.EmailConfig
	dialer *gomail.Dialer
}

// NewSMTPMailer builds the receipt mailer from SMTP configuration.
// When email is disabled in config the caller should fall back to
// services.NopMailer instead of constructing this.
func NewSMTPMailer(cfg sharedConfig.EmailConfig) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// NewReceiptMailer returns the configured mailer, or a no-op one when
// email sending is disabled.
func NewReceiptMailer(cfg sharedConfig.EmailConfig) services.ReceiptMailer {
	if !cfg.Enabled {
		return services.NopMailer{}
	}
	return NewSMTPMailer(cfg)
}

func (m *SMTPMailer) SendSubscriptionApproved(ctx context.Context, toEmail, planName string, endDate *time.Time) error {
	until := "further notice"
	if endDate != nil {
		until = endDate.Format("January 2, 2006")
	}

	subject := "Your subscription is active"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Subscription approved</h2>
			<p>Your payment has been reviewed and your <strong>%s</strong> subscription is now active.</p>
			<p>It runs until %s.</p>
			<p>Your profile now ranks with its new tier on the directory.</p>
		</body>
		</html>
	`, planName, until)

	plainBody := fmt.Sprintf(`
Subscription approved

Your payment has been reviewed and your %s subscription is now active.
It runs until %s.

Your profile now ranks with its new tier on the directory.
	`, planName, until)

	return m.send(ctx, toEmail, subject, htmlBody, plainBody)
}

func (m *SMTPMailer) SendSubscriptionRejected(ctx context.Context, toEmail, planName, reason string) error {
	subject := "Your subscription request was declined"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Subscription declined</h2>
			<p>We could not approve your payment for the <strong>%s</strong> plan.</p>
			<p>Reviewer note: %s</p>
			<p>You can submit a new payment proof at any time.</p>
		</body>
		</html>
	`, planName, reason)

	plainBody := fmt.Sprintf(`
Subscription declined

We could not approve your payment for the %s plan.

Reviewer note: %s

You can submit a new payment proof at any time.
	`, planName, reason)

	return m.send(ctx, toEmail, subject, htmlBody, plainBody)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, htmlBody, plainBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", plainBody)
	msg.AddAlternative("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
