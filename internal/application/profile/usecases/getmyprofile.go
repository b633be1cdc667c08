package usecases

import (
	"context"
	"fmt"

	"github.com/vitrine-app/vitrine/internal/application/profile/dto"
	"github.com/vitrine-app/vitrine/internal/domain/profile"
	"github.com/vitrine-app/vitrine/internal/shared/errors"
)

// GetMyProfileUseCase returns the caller's own profile, unredacted,
// whatever its status.
type GetMyProfileUseCase struct {
	profileRepo profile.Repository
}

func NewGetMyProfileUseCase(profileRepo profile.Repository) *GetMyProfileUseCase {
	return &GetMyProfileUseCase{profileRepo: profileRepo}
}

func (uc *GetMyProfileUseCase) Execute(ctx context.Context, userID uint) (*dto.OwnedProfileDTO, error) {
	if userID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	p, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("profile not found")
	}

	result := dto.FromProfile(p)
	return &result, nil
}
