package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/vitrine-app/vitrine/internal/application/subscription/dto"
	"github.com/vitrine-app/vitrine/internal/application/subscription/services"
	"github.com/vitrine-app/vitrine/internal/domain/payment"
	"github.com/vitrine-app/vitrine/internal/domain/plan"
	"github.com/vitrine-app/vitrine/internal/domain/subscription"
	"github.com/vitrine-app/vitrine/internal/domain/user"
	"github.com/vitrine-app/vitrine/internal/shared/errors"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

// ApproveSubscriptionUseCase is the administrator approval step: the payment
// proof is marked approved, the subscription activates for the plan's
// period, and the account's denormalized plan is refreshed so the resolver's
// cached fallback agrees with the authoritative row.
type ApproveSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	paymentRepo      payment.Repository
	planRepo         plan.Repository
	userRepo         user.Repository
	mailer           services.ReceiptMailer
	logger           logger.Interface
}

func NewApproveSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	paymentRepo payment.Repository,
	planRepo plan.Repository,
	userRepo user.Repository,
	mailer services.ReceiptMailer,
	log logger.Interface,
) *ApproveSubscriptionUseCase {
	return &ApproveSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		planRepo:         planRepo,
		userRepo:         userRepo,
		mailer:           mailer,
		logger:           log,
	}
}

// ApproveSubscriptionCommand identifies the subscription and the reviewer.
type ApproveSubscriptionCommand struct {
	SubscriptionSID string
	ReviewerID      uint
	Note            string
}

func (uc *ApproveSubscriptionUseCase) Execute(ctx context.Context, cmd ApproveSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	sub, err := uc.subscriptionRepo.GetBySID(ctx, cmd.SubscriptionSID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, errors.NewNotFoundError("subscription not found")
	}

	p, err := uc.planRepo.GetBySlug(ctx, sub.PlanSlug())
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if p == nil {
		return nil, errors.NewConflictError(fmt.Sprintf("plan %s no longer exists", sub.PlanSlug()))
	}

	if sub.PaymentID() != nil {
		pay, err := uc.paymentRepo.GetByID(ctx, *sub.PaymentID())
		if err != nil {
			return nil, fmt.Errorf("failed to get payment: %w", err)
		}
		if pay == nil {
			return nil, errors.NewConflictError("payment proof missing for subscription")
		}
		if err := pay.Approve(cmd.ReviewerID, cmd.Note); err != nil {
			return nil, errors.NewConflictError(err.Error())
		}
		if err := uc.paymentRepo.Update(ctx, pay); err != nil {
			return nil, fmt.Errorf("failed to update payment: %w", err)
		}
	}

	start, end := p.SubscriptionPeriod(time.Now().UTC())
	if err := sub.Activate(start, end); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}
	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	u, err := uc.userRepo.GetByID(ctx, sub.UserID())
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u != nil {
		u.SetCurrentPlan(p.Slug())
		if err := uc.userRepo.Update(ctx, u); err != nil {
			return nil, fmt.Errorf("failed to update user plan: %w", err)
		}
		if err := uc.mailer.SendSubscriptionApproved(ctx, u.Email(), p.Name(), end); err != nil {
			uc.logger.Warnw("approval mail failed", "user_id", u.ID(), "error", err)
		}
	}

	uc.logger.Infow("subscription approved",
		"subscription_sid", sub.SID(),
		"plan", p.Slug(),
		"reviewer_id", cmd.ReviewerID,
	)

	result := dto.FromSubscription(sub)
	return &result, nil
}
