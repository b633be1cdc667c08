package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vitrine-app/vitrine/internal/application/listing/dto"
	"github.com/vitrine-app/vitrine/internal/application/listing/services"
	"github.com/vitrine-app/vitrine/internal/domain/profile"
	"github.com/vitrine-app/vitrine/internal/domain/ranking"
	"github.com/vitrine-app/vitrine/internal/domain/subscription"
	"github.com/vitrine-app/vitrine/internal/domain/user"
	"github.com/vitrine-app/vitrine/internal/shared/errors"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
	"github.com/vitrine-app/vitrine/internal/shared/utils"
)

// BrowseProfilesUseCase produces the public listing page: fetch listed
// profiles matching the filter, rank the whole candidate set, paginate, and
// redact each row for the viewer.
type BrowseProfilesUseCase struct {
	profileRepo      profile.Repository
	subscriptionRepo subscription.Repository
	userRepo         user.Repository
	catalogs         services.CatalogProvider
	viewers          *services.ViewerResolver
	settings         services.RankingSettings
	logger           logger.Interface
}

func NewBrowseProfilesUseCase(
	profileRepo profile.Repository,
	subscriptionRepo subscription.Repository,
	userRepo user.Repository,
	catalogs services.CatalogProvider,
	viewers *services.ViewerResolver,
	settings services.RankingSettings,
	log logger.Interface,
) *BrowseProfilesUseCase {
	return &BrowseProfilesUseCase{
		profileRepo:      profileRepo,
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
		catalogs:         catalogs,
		viewers:          viewers,
		settings:         settings,
		logger:           log,
	}
}

// BrowseProfilesQuery carries the filter and pagination of one listing
// request. ViewerUserID 0 means anonymous. A non-empty Cursor takes
// precedence over Page.
type BrowseProfilesQuery struct {
	ViewerUserID uint

	City         string
	MinAge       int
	MaxAge       int
	Search       string
	AvailableNow bool

	Page     int
	PageSize int
	Cursor   string
}

// BrowseProfilesResult is one viewer-scoped listing page.
type BrowseProfilesResult struct {
	Items      []dto.ProfileListItemDTO
	Total      int64
	Page       int
	PageSize   int
	NextCursor string
}

func (uc *BrowseProfilesUseCase) Execute(ctx context.Context, query BrowseProfilesQuery) (*BrowseProfilesResult, error) {
	if query.MinAge < 0 || query.MaxAge < 0 {
		return nil, errors.NewValidationError("age bounds cannot be negative")
	}
	if query.MinAge > 0 && query.MaxAge > 0 && query.MinAge > query.MaxAge {
		return nil, errors.NewValidationError("min age cannot exceed max age")
	}
	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	now := time.Now().UTC()

	filter := profile.ListFilter{
		City:         strings.TrimSpace(query.City),
		MinAge:       query.MinAge,
		MaxAge:       query.MaxAge,
		Search:       services.NormalizeSearch(query.Search),
		AvailableNow: query.AvailableNow,
	}

	profiles, err := uc.profileRepo.ListListed(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	sources, err := loadCandidateSources(ctx, uc.subscriptionRepo, uc.userRepo, profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate accounts: %w", err)
	}

	catalog := uc.catalogs.Catalog(ctx)
	ranked := catalog.RankAll(buildCandidates(profiles, sources), uc.settings.Options(now))

	var page []ranking.RankedProfile
	var nextCursor string
	if query.Cursor != "" {
		page, nextCursor = ranking.SliceAfterCursor(ranked, query.Cursor, pagination.PageSize)
	} else {
		start, end := utils.ApplyPagination(len(ranked), pagination.Page, pagination.PageSize)
		page = ranked[start:end]
		if end < len(ranked) && len(page) > 0 {
			nextCursor = page[len(page)-1].SID
		}
	}

	viewer := uc.viewers.Resolve(ctx, query.ViewerUserID, now)

	uc.logger.Debugw("listing assembled",
		"candidates", len(ranked),
		"page_items", len(page),
		"viewer_paid", viewer.HasActiveSubscription,
	)

	return &BrowseProfilesResult{
		Items:      dto.FromRankedAll(page, viewer),
		Total:      int64(len(ranked)),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		NextCursor: nextCursor,
	}, nil
}
