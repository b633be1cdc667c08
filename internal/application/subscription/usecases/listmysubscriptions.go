package usecases

import (
	"context"
	"fmt"

	"github.com/vitrine-app/vitrine/internal/application/subscription/dto"
	"github.com/vitrine-app/vitrine/internal/domain/subscription"
	"github.com/vitrine-app/vitrine/internal/shared/errors"
)

// ListMySubscriptionsUseCase returns the calling member's subscription
// history, newest first.
type ListMySubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
}

func NewListMySubscriptionsUseCase(subscriptionRepo subscription.Repository) *ListMySubscriptionsUseCase {
	return &ListMySubscriptionsUseCase{subscriptionRepo: subscriptionRepo}
}

func (uc *ListMySubscriptionsUseCase) Execute(ctx context.Context, userID uint) ([]dto.SubscriptionDTO, error) {
	if userID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	subs, err := uc.subscriptionRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return dto.FromSubscriptions(subs), nil
}
