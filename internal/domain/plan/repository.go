package plan

import "context"

// Repository is the persistence port for plan catalog entries.
type Repository interface {
	Create(ctx context.Context, p *Plan) error
	Update(ctx context.Context, p *Plan) error
	GetBySlug(ctx context.Context, slug string) (*Plan, error)

	// ListActive returns purchasable plans ordered by sort order.
	ListActive(ctx context.Context) ([]*Plan, error)

	// ListAll returns every plan, active or not; feeds catalog building.
	ListAll(ctx context.Context) ([]*Plan, error)
}
