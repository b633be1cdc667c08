package usecases

import (
	"context"
	"fmt"

	"github.com/vitrine-app/vitrine/internal/application/subscription/dto"
	"github.com/vitrine-app/vitrine/internal/domain/payment"
	"github.com/vitrine-app/vitrine/internal/domain/subscription"
	"github.com/vitrine-app/vitrine/internal/domain/user"
)

// ListPendingReviewUseCase builds the administrator review queue: pending
// subscriptions joined with their payment proof and the member's email.
type ListPendingReviewUseCase struct {
	subscriptionRepo subscription.Repository
	paymentRepo      payment.Repository
	userRepo         user.Repository
}

func NewListPendingReviewUseCase(
	subscriptionRepo subscription.Repository,
	paymentRepo payment.Repository,
	userRepo user.Repository,
) *ListPendingReviewUseCase {
	return &ListPendingReviewUseCase{
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
		userRepo:         userRepo,
	}
}

// ReviewItemDTO is one row of the review queue.
type ReviewItemDTO struct {
	Subscription dto.SubscriptionDTO `json:"subscription"`
	Payment      *dto.PaymentDTO     `json:"payment,omitempty"`
	MemberEmail  string              `json:"member_email,omitempty"`
}

func (uc *ListPendingReviewUseCase) Execute(ctx context.Context) ([]ReviewItemDTO, error) {
	subs, err := uc.subscriptionRepo.ListPendingReview(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending subscriptions: %w", err)
	}

	userIDs := make([]uint, 0, len(subs))
	for _, s := range subs {
		userIDs = append(userIDs, s.UserID())
	}
	users, err := uc.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	items := make([]ReviewItemDTO, 0, len(subs))
	for _, s := range subs {
		item := ReviewItemDTO{Subscription: dto.FromSubscription(s)}
		if u, ok := users[s.UserID()]; ok {
			item.MemberEmail = u.Email()
		}
		if s.PaymentID() != nil {
			pay, err := uc.paymentRepo.GetByID(ctx, *s.PaymentID())
			if err != nil {
				return nil, fmt.Errorf("failed to load payment: %w", err)
			}
			if pay != nil {
				p := dto.FromPayment(pay)
				item.Payment = &p
			}
		}
		items = append(items, item)
	}
	return items, nil
}
