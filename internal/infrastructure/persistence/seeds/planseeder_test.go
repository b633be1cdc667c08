package seeds

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrine-app/vitrine/internal/domain/plan"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

type memPlanRepo struct {
	plans  []*plan.Plan
	nextID uint
}

func (r *memPlanRepo) Create(ctx context.Context, p *plan.Plan) error {
	r.nextID++
	if err := p.SetID(r.nextID); err != nil {
		return err
	}
	r.plans = append(r.plans, p)
	return nil
}

func (r *memPlanRepo) Update(ctx context.Context, p *plan.Plan) error { return nil }

func (r *memPlanRepo) GetBySlug(ctx context.Context, slug string) (*plan.Plan, error) {
	for _, p := range r.plans {
		if p.Slug() == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPlanRepo) ListActive(ctx context.Context) ([]*plan.Plan, error) {
	return r.plans, nil
}

func (r *memPlanRepo) ListAll(ctx context.Context) ([]*plan.Plan, error) {
	return r.plans, nil
}

func seedLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plans.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestPlanSeeder_SeedsEmptyTable(t *testing.T) {
	repo := &memPlanRepo{}
	path := writeSeedFile(t, `
plans:
  - slug: Premium
    name: Premium
    base_priority: 2
    show_contact: true
    price_cents: 2900
    currency: eur
    duration_days: 30
    sort_order: 2
`)

	err := NewPlanSeeder(repo, seedLogger()).SeedFromFile(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, repo.plans, 1)

	p := repo.plans[0]
	assert.Equal(t, "premium", p.Slug())
	assert.Equal(t, "EUR", p.Currency())
	assert.Equal(t, 2, p.SortOrder())
	assert.True(t, p.ShowContact())
}

func TestPlanSeeder_SkipsPopulatedTable(t *testing.T) {
	repo := &memPlanRepo{}
	existing, err := plan.NewPlan("elite", "Elite", 3, true, 5900, "EUR", 30)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), existing))

	path := writeSeedFile(t, `
plans:
  - slug: premium
    name: Premium
    base_priority: 2
    price_cents: 2900
    currency: EUR
`)

	err = NewPlanSeeder(repo, seedLogger()).SeedFromFile(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, repo.plans, 1)
}

func TestPlanSeeder_MissingFileIsNoop(t *testing.T) {
	repo := &memPlanRepo{}

	err := NewPlanSeeder(repo, seedLogger()).SeedFromFile(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, repo.plans)
}

func TestPlanSeeder_RejectsInvalidSeed(t *testing.T) {
	repo := &memPlanRepo{}
	path := writeSeedFile(t, `
plans:
  - slug: broken
    name: Broken
    base_priority: 0
`)

	err := NewPlanSeeder(repo, seedLogger()).SeedFromFile(context.Background(), path)
	assert.Error(t, err)
}
