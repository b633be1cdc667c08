package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/vitrine-app/vitrine/internal/application/profile/dto"
	"github.com/vitrine-app/vitrine/internal/domain/profile"
	"github.com/vitrine-app/vitrine/internal/domain/ranking"
	"github.com/vitrine-app/vitrine/internal/shared/errors"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

// AdjustRankingUseCase groups the administrator ranking controls: the plan
// override, the ranking suspension, and the temporary boost. Each maps to
// one input of the ranking core.
type AdjustRankingUseCase struct {
	profileRepo profile.Repository
	catalog     *ranking.Catalog
	logger      logger.Interface
}

func NewAdjustRankingUseCase(profileRepo profile.Repository, catalog *ranking.Catalog, log logger.Interface) *AdjustRankingUseCase {
	if catalog == nil {
		catalog = ranking.DefaultCatalog()
	}
	return &AdjustRankingUseCase{profileRepo: profileRepo, catalog: catalog, logger: log}
}

// SetManualPlan installs or clears the plan override. A nil planID clears
// it; a non-nil one must name a catalog plan.
func (uc *AdjustRankingUseCase) SetManualPlan(ctx context.Context, profileSID string, planID *string) (*dto.OwnedProfileDTO, error) {
	p, err := uc.getProfile(ctx, profileSID)
	if err != nil {
		return nil, err
	}

	if planID != nil {
		normalized, ok := uc.catalog.Normalize(*planID)
		if !ok {
			return nil, errors.NewValidationError(fmt.Sprintf("unknown plan: %s", *planID))
		}
		s := string(normalized)
		planID = &s
	}
	p.SetManualPlan(planID)

	return uc.save(ctx, p, "manual plan set")
}

// SuspendRanking forces the profile to the bottom of the listing until
// restored.
func (uc *AdjustRankingUseCase) SuspendRanking(ctx context.Context, profileSID string) (*dto.OwnedProfileDTO, error) {
	p, err := uc.getProfile(ctx, profileSID)
	if err != nil {
		return nil, err
	}
	p.SuspendRanking()
	return uc.save(ctx, p, "ranking suspended")
}

// RestoreRanking lifts a ranking suspension.
func (uc *AdjustRankingUseCase) RestoreRanking(ctx context.Context, profileSID string) (*dto.OwnedProfileDTO, error) {
	p, err := uc.getProfile(ctx, profileSID)
	if err != nil {
		return nil, err
	}
	p.RestoreRanking()
	return uc.save(ctx, p, "ranking restored")
}

// Boost grants top placement until the given time.
func (uc *AdjustRankingUseCase) Boost(ctx context.Context, profileSID string, until time.Time) (*dto.OwnedProfileDTO, error) {
	p, err := uc.getProfile(ctx, profileSID)
	if err != nil {
		return nil, err
	}
	if err := p.Boost(until); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	return uc.save(ctx, p, "boost granted")
}

// ClearBoost removes an active boost.
func (uc *AdjustRankingUseCase) ClearBoost(ctx context.Context, profileSID string) (*dto.OwnedProfileDTO, error) {
	p, err := uc.getProfile(ctx, profileSID)
	if err != nil {
		return nil, err
	}
	p.ClearBoost()
	return uc.save(ctx, p, "boost cleared")
}

func (uc *AdjustRankingUseCase) getProfile(ctx context.Context, sid string) (*profile.Profile, error) {
	p, err := uc.profileRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("profile not found")
	}
	return p, nil
}

func (uc *AdjustRankingUseCase) save(ctx context.Context, p *profile.Profile, event string) (*dto.OwnedProfileDTO, error) {
	if err := uc.profileRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	uc.logger.Infow(event, "profile_sid", p.SID())
	result := dto.FromProfile(p)
	return &result, nil
}
