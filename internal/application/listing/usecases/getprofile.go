package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/vitrine-app/vitrine/internal/application/listing/dto"
	"github.com/vitrine-app/vitrine/internal/application/listing/services"
	"github.com/vitrine-app/vitrine/internal/domain/profile"
	"github.com/vitrine-app/vitrine/internal/domain/subscription"
	"github.com/vitrine-app/vitrine/internal/domain/user"
	"github.com/vitrine-app/vitrine/internal/shared/errors"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

// GetProfileUseCase serves the public detail view of one listed profile,
// ranked and redacted the same way the listing is. Unlisted profiles are
// indistinguishable from missing ones.
type GetProfileUseCase struct {
	profileRepo      profile.Repository
	subscriptionRepo subscription.Repository
	userRepo         user.Repository
	catalogs         services.CatalogProvider
	viewers          *services.ViewerResolver
	settings         services.RankingSettings
	logger           logger.Interface
}

func NewGetProfileUseCase(
	profileRepo profile.Repository,
	subscriptionRepo subscription.Repository,
	userRepo user.Repository,
	catalogs services.CatalogProvider,
	viewers *services.ViewerResolver,
	settings services.RankingSettings,
	log logger.Interface,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo:      profileRepo,
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		catalogs:         catalogs,
		viewers:          viewers,
		settings:         settings,
		logger:           log,
	}
}

// GetProfileQuery identifies the profile by SID. ViewerUserID 0 means
// anonymous.
type GetProfileQuery struct {
	SID          string
	ViewerUserID uint
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*dto.ProfileListItemDTO, error) {
	if query.SID == "" {
		return nil, errors.NewValidationError("profile sid is required")
	}
	now := time.Now().UTC()

	p, err := uc.profileRepo.GetBySID(ctx, query.SID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if p == nil || !p.Status().IsListable() {
		return nil, errors.NewNotFoundError("profile not found")
	}

	sources, err := loadCandidateSources(ctx, uc.subscriptionRepo, uc.userRepo, []*profile.Profile{p})
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate account: %w", err)
	}

	catalog := uc.catalogs.Catalog(ctx)
	ranked := catalog.Rank(buildCandidate(p, sources), uc.settings.Options(now))
	viewer := uc.viewers.Resolve(ctx, query.ViewerUserID, now)

	item := dto.FromRanked(ranked, viewer)
	return &item, nil
}
