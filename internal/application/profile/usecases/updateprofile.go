package usecases

import (
	"context"
	"fmt"

	"github.com/vitrine-app/vitrine/internal/application/profile/dto"
	"github.com/vitrine-app/vitrine/internal/application/profile/services"
	"github.com/vitrine-app/vitrine/internal/domain/profile"
	"github.com/vitrine-app/vitrine/internal/shared/errors"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

// UpdateProfileUseCase applies owner edits. The bio is rendered and
// sanitized here so the aggregate only ever stores a safe pair.
type UpdateProfileUseCase struct {
	profileRepo profile.Repository
	renderer    services.BioRenderer
	logger      logger.Interface
}

func NewUpdateProfileUseCase(profileRepo profile.Repository, renderer services.BioRenderer, log logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{profileRepo: profileRepo, renderer: renderer, logger: log}
}

// UpdateProfileCommand carries the full replacement state of the editable
// fields; partial updates are resolved by the handler before this point.
type UpdateProfileCommand struct {
	UserID       uint
	DisplayName  string
	Bio          string
	City         string
	Contact      string
	Age          int
	Images       []string
	AvailableNow bool
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.OwnedProfileDTO, error) {
	if cmd.UserID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	p, err := uc.profileRepo.GetByUserID(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("profile not found")
	}

	bioHTML, err := uc.renderer.Render(cmd.Bio)
	if err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("cannot render bio: %v", err))
	}

	if err := p.UpdateDetails(cmd.DisplayName, cmd.Bio, bioHTML, cmd.City, cmd.Contact, cmd.Age, cmd.AvailableNow); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := p.ReplaceImages(cmd.Images); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	uc.logger.Infow("profile updated", "profile_sid", p.SID())

	result := dto.FromProfile(p)
	return &result, nil
}
