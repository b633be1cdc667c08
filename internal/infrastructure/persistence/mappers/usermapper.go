package mappers

import (
	"github.com/vitrine-app/vitrine/internal/domain/user"
	"github.com/vitrine-app/vitrine/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between domain entities and
// persistence models.
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type userMapper struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.Role,
		model.CurrentPlan,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *userMapper) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:          entity.ID(),
		Email:       entity.Email(),
		Role:        entity.Role(),
		CurrentPlan: entity.CurrentPlan(),
		Version:     entity.Version(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *userMapper) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
