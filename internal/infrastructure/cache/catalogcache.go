package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vitrine-app/vitrine/internal/domain/plan"
	"github.com/vitrine-app/vitrine/internal/domain/ranking"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

const catalogCacheKey = "vitrine:catalog:tiers"

// tierPayload is the redis wire form of one catalog tier.
type tierPayload struct {
	Plan         string `json:"plan"`
	BasePriority int    `json:"base_priority"`
	ShowContact  bool   `json:"show_contact"`
}

// CatalogCache serves the plan catalog from redis, falling back to the
// plan table on a miss and to the built-in catalog when both are
// unavailable. Catalog reads sit on every listing request, so they must
// never fail.
type CatalogCache struct {
	planRepo plan.Repository
	redis    *redis.Client
	ttl      time.Duration
	logger   logger.Interface
}

// NewCatalogCache builds the cached catalog provider. A nil redis client
// degrades to reading the plan table on every call.
func NewCatalogCache(planRepo plan.Repository, redisClient *redis.Client, ttl time.Duration, log logger.Interface) *CatalogCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CatalogCache{
		planRepo: planRepo,
		redis:    redisClient,
		ttl:      ttl,
		logger:   log,
	}
}

// Catalog returns the current plan catalog.
func (c *CatalogCache) Catalog(ctx context.Context) *ranking.Catalog {
	if cat := c.fromRedis(ctx); cat != nil {
		return cat
	}

	tiers, err := c.tiersFromTable(ctx)
	if err != nil {
		c.logger.Warnw("plan table unavailable, using built-in catalog", "error", err)
		return ranking.DefaultCatalog()
	}
	if len(tiers) == 0 {
		return ranking.DefaultCatalog()
	}

	cat, err := ranking.NewCatalog(tiers)
	if err != nil {
		c.logger.Warnw("plan table holds an invalid catalog, using built-in", "error", err)
		return ranking.DefaultCatalog()
	}

	c.store(ctx, tiers)
	return cat
}

// Invalidate drops the cached catalog; called after plan changes.
func (c *CatalogCache) Invalidate(ctx context.Context) {
	if c.redis == nil {
		return
	}
	if err := c.redis.Del(ctx, catalogCacheKey).Err(); err != nil {
		c.logger.Warnw("failed to invalidate catalog cache", "error", err)
	}
}

func (c *CatalogCache) fromRedis(ctx context.Context) *ranking.Catalog {
	if c.redis == nil {
		return nil
	}

	raw, err := c.redis.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warnw("catalog cache read failed", "error", err)
		}
		return nil
	}

	var payload []tierPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.logger.Warnw("catalog cache holds invalid payload", "error", err)
		return nil
	}

	tiers := make([]ranking.Tier, 0, len(payload))
	for _, p := range payload {
		tiers = append(tiers, ranking.Tier{
			Plan:         ranking.PlanID(p.Plan),
			BasePriority: p.BasePriority,
			ShowContact:  p.ShowContact,
		})
	}

	cat, err := ranking.NewCatalog(tiers)
	if err != nil {
		return nil
	}
	return cat
}

func (c *CatalogCache) tiersFromTable(ctx context.Context) ([]ranking.Tier, error) {
	plans, err := c.planRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// Inactive plans stay in the catalog: existing subscriptions on them
	// must keep resolving. Only purchase listings filter on active.
	tiers := make([]ranking.Tier, 0, len(plans))
	for _, p := range plans {
		tiers = append(tiers, p.CatalogTier())
	}
	return tiers, nil
}

func (c *CatalogCache) store(ctx context.Context, tiers []ranking.Tier) {
	if c.redis == nil {
		return
	}

	payload := make([]tierPayload, 0, len(tiers))
	for _, t := range tiers {
		payload = append(payload, tierPayload{
			Plan:         string(t.Plan),
			BasePriority: t.BasePriority,
			ShowContact:  t.ShowContact,
		})
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, catalogCacheKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warnw("catalog cache write failed", "error", err)
	}
}
