package services

import (
	"time"

	"github.com/vitrine-app/vitrine/internal/domain/ranking"
	sharedconfig "github.com/vitrine-app/vitrine/internal/shared/config"
)

// RankingSettings carries the tunable ranking parameters in domain terms.
type RankingSettings struct {
	GraceWindow time.Duration
	Weights     ranking.CompletenessWeights
}

// DefaultRankingSettings returns the built-in tuning: three days of grace
// and the standard completeness weights.
func DefaultRankingSettings() RankingSettings {
	return RankingSettings{
		GraceWindow: 3 * 24 * time.Hour,
		Weights:     ranking.DefaultCompletenessWeights(),
	}
}

// RankingSettingsFromConfig maps configuration onto ranking settings.
// Zero values fall back to the defaults so a partial config section stays
// usable.
func RankingSettingsFromConfig(cfg *sharedconfig.RankingConfig) RankingSettings {
	s := DefaultRankingSettings()
	if cfg == nil {
		return s
	}
	if cfg.GraceDays > 0 {
		s.GraceWindow = time.Duration(cfg.GraceDays) * 24 * time.Hour
	}
	if cfg.BioWeight > 0 {
		s.Weights.Bio = cfg.BioWeight
	}
	if cfg.CityWeight > 0 {
		s.Weights.City = cfg.CityWeight
	}
	if cfg.PerImageWeight > 0 {
		s.Weights.PerImage = cfg.PerImageWeight
	}
	if cfg.MaxScoredImages > 0 {
		s.Weights.MaxScoredImages = cfg.MaxScoredImages
	}
	return s
}

// Options builds the per-request ranking options for an explicit clock.
func (s RankingSettings) Options(now time.Time) ranking.Options {
	return ranking.Options{Now: now, GraceWindow: s.GraceWindow, Weights: s.Weights}
}
