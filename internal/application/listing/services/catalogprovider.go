package services

import (
	"context"

	"github.com/vitrine-app/vitrine/internal/domain/ranking"
)

// CatalogProvider supplies the current plan catalog. Implementations back
// this with the plan table plus a cache; they must fall back to the
// hardcoded catalog rather than fail, so listings keep working when the
// table is empty or unreachable.
type CatalogProvider interface {
	Catalog(ctx context.Context) *ranking.Catalog
}

// StaticCatalogProvider serves a fixed catalog. Used in tests and as the
// last-resort fallback.
type StaticCatalogProvider struct {
	catalog *ranking.Catalog
}

// NewStaticCatalogProvider wraps a fixed catalog; nil means the default.
func NewStaticCatalogProvider(catalog *ranking.Catalog) *StaticCatalogProvider {
	if catalog == nil {
		catalog = ranking.DefaultCatalog()
	}
	return &StaticCatalogProvider{catalog: catalog}
}

func (p *StaticCatalogProvider) Catalog(ctx context.Context) *ranking.Catalog {
	return p.catalog
}
