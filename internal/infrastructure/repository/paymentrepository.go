package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vitrine-app/vitrine/internal/domain/payment"
	vo "github.com/vitrine-app/vitrine/internal/domain/payment/valueobjects"
	"github.com/vitrine-app/vitrine/internal/infrastructure/persistence/mappers"
	"github.com/vitrine-app/vitrine/internal/infrastructure/persistence/models"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

type PaymentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PaymentMapper
	logger logger.Interface
}

func NewPaymentRepository(db *gorm.DB, log logger.Interface) payment.Repository {
	return &PaymentRepositoryImpl{
		db:     db,
		mapper: mappers.NewPaymentMapper(),
		logger: log,
	}
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, p *payment.Payment) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to convert payment to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create payment", "error", err, "user_id", p.UserID())
		return fmt.Errorf("failed to create payment: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("payment proof recorded", "payment_id", model.ID, "sid", p.SID())
	return nil
}

func (r *PaymentRepositoryImpl) Update(ctx context.Context, p *payment.Payment) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		return fmt.Errorf("failed to convert payment to model: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.PaymentModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"status":        model.Status,
			"reviewer_id":   model.ReviewerID,
			"reviewer_note": model.ReviewerNote,
			"reviewed_at":   model.ReviewedAt,
			"version":       model.Version,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update payment", "error", result.Error, "payment_id", p.ID())
		return fmt.Errorf("failed to update payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("payment %d not found", p.ID())
	}
	return nil
}

func (r *PaymentRepositoryImpl) GetByID(ctx context.Context, paymentID uint) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).First(&model, paymentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get payment by ID", "error", err, "payment_id", paymentID)
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *PaymentRepositoryImpl) GetBySID(ctx context.Context, sid string) (*payment.Payment, error) {
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get payment by SID", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get payment by SID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *PaymentRepositoryImpl) ListSubmitted(ctx context.Context) ([]*payment.Payment, error) {
	var paymentModels []*models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", vo.StatusSubmitted.String()).
		Order("created_at ASC").
		Find(&paymentModels).Error; err != nil {
		r.logger.Errorw("failed to list submitted payments", "error", err)
		return nil, fmt.Errorf("failed to list submitted payments: %w", err)
	}
	return r.mapper.ToEntities(paymentModels)
}
