// Package dto defines the owner-facing view of a profile. Unlike the
// public listing view, nothing here is redacted: owners always see their
// own data.
package dto

import (
	"time"

	"github.com/vitrine-app/vitrine/internal/domain/profile"
)

// OwnedProfileDTO is the profile as its owner (or an administrator) sees it.
type OwnedProfileDTO struct {
	SID               string     `json:"sid"`
	DisplayName       string     `json:"display_name"`
	Slug              string     `json:"slug"`
	Bio               string     `json:"bio"`
	BioHTML           string     `json:"bio_html"`
	City              string     `json:"city"`
	Contact           string     `json:"contact"`
	Age               int        `json:"age"`
	Images            []string   `json:"images"`
	AvailableNow      bool       `json:"available_now"`
	Status            string     `json:"status"`
	RankingSuspended  bool       `json:"ranking_suspended"`
	RankingBoostUntil *time.Time `json:"ranking_boost_until,omitempty"`
	LastActiveAt      *time.Time `json:"last_active_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// FromProfile maps the aggregate into the owner view.
func FromProfile(p *profile.Profile) OwnedProfileDTO {
	return OwnedProfileDTO{
		SID:               p.SID(),
		DisplayName:       p.DisplayName(),
		Slug:              p.Slug(),
		Bio:               p.Bio(),
		BioHTML:           p.BioHTML(),
		City:              p.City(),
		Contact:           p.Contact(),
		Age:               p.Age(),
		Images:            p.Images(),
		AvailableNow:      p.AvailableNow(),
		Status:            p.Status().String(),
		RankingSuspended:  p.RankingSuspended(),
		RankingBoostUntil: p.RankingBoostUntil(),
		LastActiveAt:      p.LastActiveAt(),
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}
