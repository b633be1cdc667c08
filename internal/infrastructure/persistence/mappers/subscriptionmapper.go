package mappers

import (
	"github.com/vitrine-app/vitrine/internal/domain/subscription"
	vo "github.com/vitrine-app/vitrine/internal/domain/subscription/valueobjects"
	"github.com/vitrine-app/vitrine/internal/infrastructure/persistence/models"
)

// SubscriptionMapper handles the conversion between domain entities and
// persistence models.
type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type subscriptionMapper struct{}

// NewSubscriptionMapper creates a new subscription mapper
func NewSubscriptionMapper() SubscriptionMapper {
	return &subscriptionMapper{}
}

func (m *subscriptionMapper) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	return subscription.ReconstructSubscription(subscription.ReconstructParams{
		ID:        model.ID,
		SID:       model.SID,
		UserID:    model.UserID,
		PlanSlug:  model.PlanSlug,
		Status:    vo.SubscriptionStatus(model.Status),
		StartDate: model.StartDate,
		EndDate:   model.EndDate,
		PaymentID: model.PaymentID,
		Version:   model.Version,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	})
}

func (m *subscriptionMapper) ToModel(entity *subscription.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscriptionModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		UserID:    entity.UserID(),
		PlanSlug:  entity.PlanSlug(),
		Status:    entity.Status().String(),
		StartDate: entity.StartDate(),
		EndDate:   entity.EndDate(),
		PaymentID: entity.PaymentID(),
		Version:   entity.Version(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *subscriptionMapper) ToEntities(subscriptionModels []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	entities := make([]*subscription.Subscription, 0, len(subscriptionModels))
	for _, model := range subscriptionModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
