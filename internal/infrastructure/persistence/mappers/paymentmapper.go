package mappers

import (
	"github.com/vitrine-app/vitrine/internal/domain/payment"
	vo "github.com/vitrine-app/vitrine/internal/domain/payment/valueobjects"
	"github.com/vitrine-app/vitrine/internal/infrastructure/persistence/models"
)

// PaymentMapper handles the conversion between domain entities and
// persistence models.
type PaymentMapper interface {
	ToEntity(model *models.PaymentModel) (*payment.Payment, error)
	ToModel(entity *payment.Payment) (*models.PaymentModel, error)
	ToEntities(models []*models.PaymentModel) ([]*payment.Payment, error)
}

type paymentMapper struct{}

// NewPaymentMapper creates a new payment mapper
func NewPaymentMapper() PaymentMapper {
	return &paymentMapper{}
}

func (m *paymentMapper) ToEntity(model *models.PaymentModel) (*payment.Payment, error) {
	if model == nil {
		return nil, nil
	}

	return payment.ReconstructPayment(payment.ReconstructParams{
		ID:           model.ID,
		SID:          model.SID,
		UserID:       model.UserID,
		PlanSlug:     model.PlanSlug,
		AmountCents:  model.AmountCents,
		Currency:     model.Currency,
		ProofURL:     model.ProofURL,
		Status:       vo.PaymentStatus(model.Status),
		ReviewerID:   model.ReviewerID,
		ReviewerNote: model.ReviewerNote,
		ReviewedAt:   model.ReviewedAt,
		Version:      model.Version,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	})
}

func (m *paymentMapper) ToModel(entity *payment.Payment) (*models.PaymentModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PaymentModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		UserID:       entity.UserID(),
		PlanSlug:     entity.PlanSlug(),
		AmountCents:  entity.AmountCents(),
		Currency:     entity.Currency(),
		ProofURL:     entity.ProofURL(),
		Status:       entity.Status().String(),
		ReviewerID:   entity.ReviewerID(),
		ReviewerNote: entity.ReviewerNote(),
		ReviewedAt:   entity.ReviewedAt(),
		Version:      entity.Version(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *paymentMapper) ToEntities(paymentModels []*models.PaymentModel) ([]*payment.Payment, error) {
	entities := make([]*payment.Payment, 0, len(paymentModels))
	for _, model := range paymentModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
