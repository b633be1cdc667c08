package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vitrine-app/vitrine/internal/domain/profile"
	vo "github.com/vitrine-app/vitrine/internal/domain/profile/valueobjects"
	"github.com/vitrine-app/vitrine/internal/infrastructure/persistence/mappers"
	"github.com/vitrine-app/vitrine/internal/infrastructure/persistence/models"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProfileMapper
	logger logger.Interface
}

func NewProfileRepository(db *gorm.DB, log logger.Interface) profile.Repository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mappers.NewProfileMapper(),
		logger: log,
	}
}

func (r *ProfileRepositoryImpl) Create(ctx context.Context, p *profile.Profile) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to convert profile to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create profile", "error", err, "user_id", p.UserID())
		return fmt.Errorf("failed to create profile: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("profile created", "profile_id", model.ID, "sid", p.SID())
	return nil
}

func (r *ProfileRepositoryImpl) Update(ctx context.Context, p *profile.Profile) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to convert profile to model: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.ProfileModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"display_name":        model.DisplayName,
			"slug":                model.Slug,
			"bio":                 model.Bio,
			"bio_html":            model.BioHTML,
			"city":                model.City,
			"contact":             model.Contact,
			"age":                 model.Age,
			"images":              model.Images,
			"available_now":       model.AvailableNow,
			"status":              model.Status,
			"manual_plan_id":      model.ManualPlanID,
			"ranking_suspended":   model.RankingSuspended,
			"ranking_boost_until": model.RankingBoostUntil,
			"last_active_at":      model.LastActiveAt,
			"version":             model.Version,
			"updated_at":          model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update profile", "error", result.Error, "profile_id", p.ID())
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("profile %d not found", p.ID())
	}
	return nil
}

func (r *ProfileRepositoryImpl) GetByID(ctx context.Context, profileID uint) (*profile.Profile, error) {
	var model models.ProfileModel
	if err := r.db.WithContext(ctx).First(&model, profileID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get profile by ID", "error", err, "profile_id", profileID)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ProfileRepositoryImpl) GetBySID(ctx context.Context, sid string) (*profile.Profile, error) {
	var model models.ProfileModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get profile by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get profile by SID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ProfileRepositoryImpl) GetByUserID(ctx context.Context, userID uint) (*profile.Profile, error) {
	var model models.ProfileModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get profile by user ID", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get profile by user ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ProfileRepositoryImpl) ListListed(ctx context.Context, filter profile.ListFilter) ([]*profile.Profile, error) {
	query := r.db.WithContext(ctx).Model(&models.ProfileModel{}).
		Where("status = ?", vo.StatusListed.String())

	if filter.City != "" {
		query = query.Where("LOWER(city) = LOWER(?)", filter.City)
	}
	if filter.MinAge > 0 {
		query = query.Where("age >= ?", filter.MinAge)
	}
	if filter.MaxAge > 0 {
		query = query.Where("age <= ?", filter.MaxAge)
	}
	if filter.AvailableNow {
		query = query.Where("available_now = ?", true)
	}
	if filter.Search != "" {
		// The slug column is already lowercased and accent-folded, so the
		// normalized search term matches it accent-insensitively.
		like := "%" + filter.Search + "%"
		query = query.Where("(slug LIKE ? OR LOWER(display_name) LIKE ? OR LOWER(city) LIKE ?)", like, like, like)
	}

	var profileModels []*models.ProfileModel
	if err := query.Find(&profileModels).Error; err != nil {
		r.logger.Errorw("failed to list profiles", "error", err)
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return r.mapper.ToEntities(profileModels)
}

func (r *ProfileRepositoryImpl) TouchLastActive(ctx context.Context, profileID uint, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.ProfileModel{}).
		Where("id = ?", profileID).
		UpdateColumn("last_active_at", at)
	if result.Error != nil {
		r.logger.Errorw("failed to touch last active", "error", result.Error, "profile_id", profileID)
		return fmt.Errorf("failed to touch last active: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("profile %d not found", profileID)
	}
	return nil
}
