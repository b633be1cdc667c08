package payment

import "context"

// Repository is the persistence port for payment proofs.
type Repository interface {
	Create(ctx context.Context, p *Payment) error
	Update(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, paymentID uint) (*Payment, error)
	GetBySID(ctx context.Context, sid string) (*Payment, error)

	// ListSubmitted returns proofs awaiting review, oldest first.
	ListSubmitted(ctx context.Context) ([]*Payment, error)
}
