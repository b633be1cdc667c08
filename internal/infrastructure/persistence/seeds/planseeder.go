// Package seeds loads the initial plan catalog from a YAML file. Seeding
// only runs against an empty plan table so administrator edits are never
// overwritten on restart.
package seeds

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vitrine-app/vitrine/internal/domain/plan"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

type planSeed struct {
	Slug         string `yaml:"slug"`
	Name         string `yaml:"name"`
	BasePriority int    `yaml:"base_priority"`
	ShowContact  bool   `yaml:"show_contact"`
	PriceCents   int64  `yaml:"price_cents"`
	Currency     string `yaml:"currency"`
	DurationDays int    `yaml:"duration_days"`
	SortOrder    int    `yaml:"sort_order"`
}

type seedFile struct {
	Plans []planSeed `yaml:"plans"`
}

type PlanSeeder struct {
	repo   plan.Repository
	logger logger.Interface
}

func NewPlanSeeder(repo plan.Repository, log logger.Interface) *PlanSeeder {
	return &PlanSeeder{repo: repo, logger: log}
}

// SeedFromFile populates the plan table from the YAML seed file. It is a
// no-op when the table already has rows or when the file does not exist.
func (s *PlanSeeder) SeedFromFile(ctx context.Context, path string) error {
	existing, err := s.repo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check plan table: %w", err)
	}
	if len(existing) > 0 {
		s.logger.Debugw("plan table already populated, skipping seed", "plans", len(existing))
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debugw("no plan seed file, keeping built-in catalog", "path", path)
			return nil
		}
		return fmt.Errorf("failed to read plan seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse plan seed file: %w", err)
	}

	seeded := 0
	for _, entry := range file.Plans {
		p, err := plan.NewPlan(
			entry.Slug,
			entry.Name,
			entry.BasePriority,
			entry.ShowContact,
			entry.PriceCents,
			entry.Currency,
			entry.DurationDays,
		)
		if err != nil {
			return fmt.Errorf("invalid plan seed %q: %w", entry.Slug, err)
		}
		p.SetSortOrder(entry.SortOrder)

		if err := s.repo.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed plan %q: %w", entry.Slug, err)
		}
		seeded++
	}

	s.logger.Infow("seeded plan catalog", "path", path, "plans", seeded)
	return nil
}
