package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/vitrine-app/vitrine/internal/application/subscription/dto"
	"github.com/vitrine-app/vitrine/internal/domain/payment"
	"github.com/vitrine-app/vitrine/internal/domain/plan"
	"github.com/vitrine-app/vitrine/internal/domain/subscription"
	"github.com/vitrine-app/vitrine/internal/shared/errors"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

// CreateSubscriptionUseCase records a member's purchase request: a payment
// proof plus a pending subscription awaiting administrator review. Nothing
// here changes ranking; that happens only on approval.
type CreateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	paymentRepo      payment.Repository
	planRepo         plan.Repository
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	paymentRepo payment.Repository,
	planRepo plan.Repository,
	log logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		planRepo:         planRepo,
		logger:           log,
	}
}

// CreateSubscriptionCommand carries the member's purchase request.
type CreateSubscriptionCommand struct {
	UserID   uint
	PlanSlug string
	ProofURL string
}

// CreateSubscriptionResult returns both created records.
type CreateSubscriptionResult struct {
	Subscription dto.SubscriptionDTO
	Payment      dto.PaymentDTO
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*CreateSubscriptionResult, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if strings.TrimSpace(cmd.ProofURL) == "" {
		return nil, errors.NewValidationError("payment proof URL is required")
	}

	p, err := uc.planRepo.GetBySlug(ctx, strings.ToLower(strings.TrimSpace(cmd.PlanSlug)))
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if p == nil || !p.IsActive() {
		return nil, errors.NewNotFoundError("plan not found")
	}

	pay, err := payment.NewPayment(cmd.UserID, p.Slug(), p.PriceCents(), p.Currency(), cmd.ProofURL)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.paymentRepo.Create(ctx, pay); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	payID := pay.ID()
	sub, err := subscription.NewSubscription(cmd.UserID, p.Slug(), &payID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	uc.logger.Infow("subscription requested",
		"user_id", cmd.UserID,
		"plan", p.Slug(),
		"subscription_sid", sub.SID(),
	)

	return &CreateSubscriptionResult{
		Subscription: dto.FromSubscription(sub),
		Payment:      dto.FromPayment(pay),
	}, nil
}
