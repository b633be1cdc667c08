package usecases

import (
	"context"
	"fmt"

	"github.com/vitrine-app/vitrine/internal/application/profile/dto"
	"github.com/vitrine-app/vitrine/internal/domain/profile"
	"github.com/vitrine-app/vitrine/internal/shared/errors"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

// CreateProfileUseCase registers a member's profile. It enters the review
// queue as pending; only administrator approval lists it.
type CreateProfileUseCase struct {
	profileRepo profile.Repository
	logger      logger.Interface
}

func NewCreateProfileUseCase(profileRepo profile.Repository, log logger.Interface) *CreateProfileUseCase {
	return &CreateProfileUseCase{profileRepo: profileRepo, logger: log}
}

// CreateProfileCommand carries the initial profile fields.
type CreateProfileCommand struct {
	UserID      uint
	DisplayName string
	City        string
	Age         int
}

func (uc *CreateProfileUseCase) Execute(ctx context.Context, cmd CreateProfileCommand) (*dto.OwnedProfileDTO, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	existing, err := uc.profileRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("account already has a profile")
	}

	p, err := profile.NewProfile(cmd.UserID, cmd.DisplayName, cmd.City, cmd.Age)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.profileRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	uc.logger.Infow("profile submitted for review", "user_id", cmd.UserID, "profile_sid", p.SID())

	result := dto.FromProfile(p)
	return &result, nil
}
