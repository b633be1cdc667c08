package user

import "context"

// Repository is the persistence port for accounts.
type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByIDs fetches many accounts in one query, keyed by ID. Missing IDs
	// are simply absent from the map.
	GetByIDs(ctx context.Context, userIDs []uint) (map[uint]*User, error)
}
