package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/vitrine-app/vitrine/internal/domain/subscription"
	vo "github.com/vitrine-app/vitrine/internal/domain/subscription/valueobjects"
	"github.com/vitrine-app/vitrine/internal/infrastructure/persistence/mappers"
	"github.com/vitrine-app/vitrine/internal/infrastructure/persistence/models"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, log logger.Interface) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: log,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, s *subscription.Subscription) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		return fmt.Errorf("failed to convert subscription to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription", "error", err, "user_id", s.UserID())
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("subscription created", "subscription_id", model.ID, "sid", s.SID())
	return nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, s *subscription.Subscription) error {
	model, err := r.mapper.ToModel(s)
	if err != nil {
		return fmt.Errorf("failed to convert subscription to model: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("id = ?", s.ID()).
		Updates(map[string]interface{}{
			"status":     model.Status,
			"start_date": model.StartDate,
			"end_date":   model.EndDate,
			"version":    model.Version,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "error", result.Error, "subscription_id", s.ID())
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("subscription %d not found", s.ID())
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, subscriptionID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	if err := r.db.WithContext(ctx).First(&model, subscriptionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by ID", "error", err, "subscription_id", subscriptionID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) GetBySID(ctx context.Context, sid string) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get subscription by SID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) ListByUserID(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
	var subscriptionModels []*models.SubscriptionModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions by user", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return r.mapper.ToEntities(subscriptionModels)
}

func (r *SubscriptionRepositoryImpl) ListByUserIDs(ctx context.Context, userIDs []uint) (map[uint][]*subscription.Subscription, error) {
	result := make(map[uint][]*subscription.Subscription, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	var subscriptionModels []*models.SubscriptionModel
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions by users", "error", err, "count", len(userIDs))
		return nil, fmt.Errorf("failed to list subscriptions by users: %w", err)
	}

	for _, model := range subscriptionModels {
		entity, err := r.mapper.ToEntity(model)
		if err != nil {
			return nil, err
		}
		result[entity.UserID()] = append(result[entity.UserID()], entity)
	}
	return result, nil
}

func (r *SubscriptionRepositoryImpl) ListActiveEndedBefore(ctx context.Context, cutoff time.Time) ([]*subscription.Subscription, error) {
	var subscriptionModels []*models.SubscriptionModel
	if err := r.db.WithContext(ctx).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", vo.StatusActive.String(), cutoff).
		Find(&subscriptionModels).Error; err != nil {
		r.logger.Errorw("failed to list expirable subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list expirable subscriptions: %w", err)
	}
	return r.mapper.ToEntities(subscriptionModels)
}

func (r *SubscriptionRepositoryImpl) ListPendingReview(ctx context.Context) ([]*subscription.Subscription, error) {
	var subscriptionModels []*models.SubscriptionModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", vo.StatusPending.String()).
		Order("created_at ASC").
		Find(&subscriptionModels).Error; err != nil {
		r.logger.Errorw("failed to list pending subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list pending subscriptions: %w", err)
	}
	return r.mapper.ToEntities(subscriptionModels)
}
