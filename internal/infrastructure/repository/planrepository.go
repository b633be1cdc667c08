package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vitrine-app/vitrine/internal/domain/plan"
	"github.com/vitrine-app/vitrine/internal/infrastructure/persistence/mappers"
	"github.com/vitrine-app/vitrine/internal/infrastructure/persistence/models"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, log logger.Interface) plan.Repository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: log,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, p *plan.Plan) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan", "error", err, "slug", p.Slug())
		return fmt.Errorf("failed to create plan: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("plan created", "plan_id", model.ID, "slug", p.Slug())
	return nil
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, p *plan.Plan) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to convert plan to model: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.PlanModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"base_priority": model.BasePriority,
			"show_contact":  model.ShowContact,
			"price_cents":   model.PriceCents,
			"currency":      model.Currency,
			"duration_days": model.DurationDays,
			"sort_order":    model.SortOrder,
			"active":        model.Active,
			"version":       model.Version,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update plan", "error", result.Error, "plan_id", p.ID())
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("plan %d not found", p.ID())
	}
	return nil
}

func (r *PlanRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*plan.Plan, error) {
	var model models.PlanModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by slug", "error", err, "slug", slug)
		return nil, fmt.Errorf("failed to get plan by slug: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) ListActive(ctx context.Context) ([]*plan.Plan, error) {
	var planModels []*models.PlanModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("sort_order ASC, base_priority ASC").
		Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list active plans", "error", err)
		return nil, fmt.Errorf("failed to list active plans: %w", err)
	}
	return r.mapper.ToEntities(planModels)
}

func (r *PlanRepositoryImpl) ListAll(ctx context.Context) ([]*plan.Plan, error) {
	var planModels []*models.PlanModel
	if err := r.db.WithContext(ctx).
		Order("sort_order ASC, base_priority ASC").
		Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return r.mapper.ToEntities(planModels)
}
