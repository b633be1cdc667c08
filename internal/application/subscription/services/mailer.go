// Package services holds the outbound ports of the subscription context.
package services

import (
	"context"
	"time"
)

// ReceiptMailer sends subscription review outcomes to members. Delivery is
// best effort; callers log failures and continue.
type ReceiptMailer interface {
	SendSubscriptionApproved(ctx context.Context, toEmail, planName string, endDate *time.Time) error
	SendSubscriptionRejected(ctx context.Context, toEmail, planName, reason string) error
}

// NopMailer discards all mail. Used when SMTP is disabled and in tests.
type NopMailer struct{}

func (NopMailer) SendSubscriptionApproved(ctx context.Context, toEmail, planName string, endDate *time.Time) error {
	return nil
}

func (NopMailer) SendSubscriptionRejected(ctx context.Context, toEmail, planName, reason string) error {
	return nil
}
