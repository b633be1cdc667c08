package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/vitrine-app/vitrine/internal/application/subscription/dto"
	"github.com/vitrine-app/vitrine/internal/application/subscription/services"
	"github.com/vitrine-app/vitrine/internal/domain/payment"
	"github.com/vitrine-app/vitrine/internal/domain/subscription"
	"github.com/vitrine-app/vitrine/internal/domain/user"
	"github.com/vitrine-app/vitrine/internal/shared/errors"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

// RejectSubscriptionUseCase declines a pending subscription. The reviewer
// note is mandatory: members see it as the rejection reason.
type RejectSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	paymentRepo      payment.Repository
	userRepo         user.Repository
	mailer           services.ReceiptMailer
	logger           logger.Interface
}

func NewRejectSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	paymentRepo payment.Repository,
	userRepo user.Repository,
	mailer services.ReceiptMailer,
	log logger.Interface,
) *RejectSubscriptionUseCase {
	return &RejectSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		userRepo:         userRepo,
		mailer:           mailer,
		logger:           log,
	}
}

// RejectSubscriptionCommand identifies the subscription, the reviewer, and
// the reason shown to the member.
type RejectSubscriptionCommand struct {
	SubscriptionSID string
	ReviewerID      uint
	Note            string
}

func (uc *RejectSubscriptionUseCase) Execute(ctx context.Context, cmd RejectSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	if strings.TrimSpace(cmd.Note) == "" {
		return nil, errors.NewValidationError("a rejection reason is required")
	}

	sub, err := uc.subscriptionRepo.GetBySID(ctx, cmd.SubscriptionSID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, errors.NewNotFoundError("subscription not found")
	}

	if sub.PaymentID() != nil {
		pay, err := uc.paymentRepo.GetByID(ctx, *sub.PaymentID())
		if err != nil {
			return nil, fmt.Errorf("failed to get payment: %w", err)
		}
		if pay != nil {
			if err := pay.Reject(cmd.ReviewerID, cmd.Note); err != nil {
				return nil, errors.NewConflictError(err.Error())
			}
			if err := uc.paymentRepo.Update(ctx, pay); err != nil {
				return nil, fmt.Errorf("failed to update payment: %w", err)
			}
		}
	}

	if err := sub.Reject(); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}
	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	if u, err := uc.userRepo.GetByID(ctx, sub.UserID()); err == nil && u != nil {
		if err := uc.mailer.SendSubscriptionRejected(ctx, u.Email(), sub.PlanSlug(), cmd.Note); err != nil {
			uc.logger.Warnw("rejection mail failed", "user_id", u.ID(), "error", err)
		}
	}

	uc.logger.Infow("subscription rejected",
		"subscription_sid", sub.SID(),
		"reviewer_id", cmd.ReviewerID,
	)

	result := dto.FromSubscription(sub)
	return &result, nil
}
