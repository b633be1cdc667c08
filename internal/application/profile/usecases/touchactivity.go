package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/vitrine-app/vitrine/internal/domain/profile"
	"github.com/vitrine-app/vitrine/internal/shared/errors"
)

// TouchActivityUseCase stamps the member's last activity. Called from the
// session ping, so it avoids the full aggregate round-trip.
type TouchActivityUseCase struct {
	profileRepo profile.Repository
}

func NewTouchActivityUseCase(profileRepo profile.Repository) *TouchActivityUseCase {
	return &TouchActivityUseCase{profileRepo: profileRepo}
}

func (uc *TouchActivityUseCase) Execute(ctx context.Context, userID uint) error {
	if userID == 0 {
		return errors.NewUnauthorizedError("authentication required")
	}

	p, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}
	if p == nil {
		return errors.NewNotFoundError("profile not found")
	}

	if err := uc.profileRepo.TouchLastActive(ctx, p.ID(), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}
