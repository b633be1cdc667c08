package usecases

import (
	"context"
	"fmt"

	"github.com/vitrine-app/vitrine/internal/application/profile/dto"
	"github.com/vitrine-app/vitrine/internal/domain/profile"
	"github.com/vitrine-app/vitrine/internal/shared/errors"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

// ReviewAction is an administrator moderation decision on a profile.
type ReviewAction string

const (
	ReviewApprove ReviewAction = "approve"
	ReviewReject  ReviewAction = "reject"
	ReviewSuspend ReviewAction = "suspend"
	ReviewRelist  ReviewAction = "relist"
)

// ReviewProfileUseCase applies moderation decisions to a profile's listing
// status.
type ReviewProfileUseCase struct {
	profileRepo profile.Repository
	logger      logger.Interface
}

func NewReviewProfileUseCase(profileRepo profile.Repository, log logger.Interface) *ReviewProfileUseCase {
	return &ReviewProfileUseCase{profileRepo: profileRepo, logger: log}
}

// ReviewProfileCommand identifies the profile and the decision.
type ReviewProfileCommand struct {
	ProfileSID string
	Action     ReviewAction
	ReviewerID uint
}

func (uc *ReviewProfileUseCase) Execute(ctx context.Context, cmd ReviewProfileCommand) (*dto.OwnedProfileDTO, error) {
	p, err := uc.profileRepo.GetBySID(ctx, cmd.ProfileSID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("profile not found")
	}

	switch cmd.Action {
	case ReviewApprove:
		err = p.Approve()
	case ReviewReject:
		err = p.Reject()
	case ReviewSuspend:
		err = p.Suspend()
	case ReviewRelist:
		err = p.Relist()
	default:
		return nil, errors.NewValidationError(fmt.Sprintf("unknown review action: %s", cmd.Action))
	}
	if err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	uc.logger.Infow("profile reviewed",
		"profile_sid", p.SID(),
		"action", string(cmd.Action),
		"reviewer_id", cmd.ReviewerID,
	)

	result := dto.FromProfile(p)
	return &result, nil
}
