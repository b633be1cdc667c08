// Package mappers converts between domain aggregates and persistence
// models. Each direction reconstructs through the domain factories so
// invalid rows fail loudly instead of leaking into the domain.
package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/vitrine-app/vitrine/internal/domain/profile"
	vo "github.com/vitrine-app/vitrine/internal/domain/profile/valueobjects"
	"github.com/vitrine-app/vitrine/internal/infrastructure/persistence/models"
)

// ProfileMapper handles the conversion between domain entities and
// persistence models.
type ProfileMapper interface {
	ToEntity(model *models.ProfileModel) (*profile.Profile, error)
	ToModel(entity *profile.Profile) (*models.ProfileModel, error)
	ToEntities(models []*models.ProfileModel) ([]*profile.Profile, error)
}

type profileMapper struct{}

// NewProfileMapper creates a new profile mapper
func NewProfileMapper() ProfileMapper {
	return &profileMapper{}
}

func (m *profileMapper) ToEntity(model *models.ProfileModel) (*profile.Profile, error) {
	if model == nil {
		return nil, nil
	}

	var images []string
	if len(model.Images) > 0 {
		if err := json.Unmarshal(model.Images, &images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal profile images: %w", err)
		}
	}

	return profile.ReconstructProfile(profile.ReconstructParams{
		ID:                model.ID,
		SID:               model.SID,
		UserID:            model.UserID,
		DisplayName:       model.DisplayName,
		Slug:              model.Slug,
		Bio:               model.Bio,
		BioHTML:           model.BioHTML,
		City:              model.City,
		Contact:           model.Contact,
		Age:               model.Age,
		Images:            images,
		AvailableNow:      model.AvailableNow,
		Status:            vo.ProfileStatus(model.Status),
		ManualPlanID:      model.ManualPlanID,
		RankingSuspended:  model.RankingSuspended,
		RankingBoostUntil: model.RankingBoostUntil,
		LastActiveAt:      model.LastActiveAt,
		Version:           model.Version,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	})
}

func (m *profileMapper) ToModel(entity *profile.Profile) (*models.ProfileModel, error) {
	if entity == nil {
		return nil, nil
	}

	var images datatypes.JSON
	if entity.Images() != nil {
		raw, err := json.Marshal(entity.Images())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal profile images: %w", err)
		}
		images = raw
	}

	return &models.ProfileModel{
		ID:                entity.ID(),
		SID:               entity.SID(),
		UserID:            entity.UserID(),
		DisplayName:       entity.DisplayName(),
		Slug:              entity.Slug(),
		Bio:               entity.Bio(),
		BioHTML:           entity.BioHTML(),
		City:              entity.City(),
		Contact:           entity.Contact(),
		Age:               entity.Age(),
		Images:            images,
		AvailableNow:      entity.AvailableNow(),
		Status:            entity.Status().String(),
		ManualPlanID:      entity.ManualPlanID(),
		RankingSuspended:  entity.RankingSuspended(),
		RankingBoostUntil: entity.RankingBoostUntil(),
		LastActiveAt:      entity.LastActiveAt(),
		Version:           entity.Version(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}

func (m *profileMapper) ToEntities(profileModels []*models.ProfileModel) ([]*profile.Profile, error) {
	entities := make([]*profile.Profile, 0, len(profileModels))
	for _, model := range profileModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
