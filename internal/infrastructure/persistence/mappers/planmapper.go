package mappers

import (
	"github.com/vitrine-app/vitrine/internal/domain/plan"
	"github.com/vitrine-app/vitrine/internal/infrastructure/persistence/models"
)

// PlanMapper handles the conversion between domain entities and
// persistence models.
type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*plan.Plan, error)
	ToModel(entity *plan.Plan) (*models.PlanModel, error)
	ToEntities(models []*models.PlanModel) ([]*plan.Plan, error)
}

type planMapper struct{}

// NewPlanMapper creates a new plan mapper
func NewPlanMapper() PlanMapper {
	return &planMapper{}
}

func (m *planMapper) ToEntity(model *models.PlanModel) (*plan.Plan, error) {
	if model == nil {
		return nil, nil
	}

	return plan.ReconstructPlan(plan.ReconstructParams{
		ID:           model.ID,
		Slug:         model.Slug,
		Name:         model.Name,
		BasePriority: model.BasePriority,
		ShowContact:  model.ShowContact,
		PriceCents:   model.PriceCents,
		Currency:     model.Currency,
		DurationDays: model.DurationDays,
		SortOrder:    model.SortOrder,
		Active:       model.Active,
		Version:      model.Version,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	})
}

func (m *planMapper) ToModel(entity *plan.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PlanModel{
		ID:           entity.ID(),
		Slug:         entity.Slug(),
		Name:         entity.Name(),
		BasePriority: entity.BasePriority(),
		ShowContact:  entity.ShowContact(),
		PriceCents:   entity.PriceCents(),
		Currency:     entity.Currency(),
		DurationDays: entity.DurationDays(),
		SortOrder:    entity.SortOrder(),
		Active:       entity.IsActive(),
		Version:      entity.Version(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *planMapper) ToEntities(planModels []*models.PlanModel) ([]*plan.Plan, error) {
	entities := make([]*plan.Plan, 0, len(planModels))
	for _, model := range planModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
