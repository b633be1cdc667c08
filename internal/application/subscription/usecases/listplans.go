package usecases

import (
	"context"
	"fmt"

	"github.com/vitrine-app/vitrine/internal/application/subscription/dto"
	"github.com/vitrine-app/vitrine/internal/domain/plan"
)

// ListPlansUseCase returns the purchasable plan catalog for the public
// pricing page.
type ListPlansUseCase struct {
	planRepo plan.Repository
}

func NewListPlansUseCase(planRepo plan.Repository) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context) ([]dto.PlanDTO, error) {
	plans, err := uc.planRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return dto.FromPlans(plans), nil
}
