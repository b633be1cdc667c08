// Package dto holds the viewer-scoped profile views returned by listing
// use cases. Redaction happens here, once, at construction.
package dto

import (
	"time"

	"github.com/vitrine-app/vitrine/internal/domain/ranking"
)

// ProfileListItemDTO is one row of a listing. Gated fields are omitted
// unless the view was built with reveal=true; sid, display name, first
// image, and city always survive redaction.
type ProfileListItemDTO struct {
	SID          string     `json:"sid"`
	DisplayName  string     `json:"display_name"`
	City         string     `json:"city"`
	FirstImage   string     `json:"first_image,omitempty"`
	Age          int        `json:"age,omitempty"`
	AvailableNow bool       `json:"available_now"`
	Plan         string     `json:"plan"`
	ShowsContact bool       `json:"shows_contact"`
	Revealed     bool       `json:"revealed"`
	LastActiveAt *time.Time `json:"last_active_at,omitempty"`

	// Present only when revealed.
	Bio     string   `json:"bio,omitempty"`
	Contact string   `json:"contact,omitempty"`
	Images  []string `json:"images,omitempty"`
}

// FromRanked builds the viewer-scoped view of one ranked profile.
func FromRanked(r ranking.RankedProfile, viewer ranking.Viewer) ProfileListItemDTO {
	item := ProfileListItemDTO{
		SID:          r.SID,
		DisplayName:  r.DisplayName,
		City:         r.City,
		Age:          r.Age,
		AvailableNow: r.AvailableNow,
		Plan:         string(r.EffectivePlan),
		ShowsContact: r.CanShowContact,
		LastActiveAt: r.LastActiveAt,
	}
	if len(r.Images) > 0 {
		item.FirstImage = r.Images[0]
	}

	if ranking.ShouldRevealContent(viewer.HasActiveSubscription, r.CanShowContact) {
		item.Revealed = true
		item.Bio = r.Bio
		item.Contact = r.Contact
		item.Images = r.Images
	}
	return item
}

// FromRankedAll maps a ranked page into viewer-scoped views.
func FromRankedAll(items []ranking.RankedProfile, viewer ranking.Viewer) []ProfileListItemDTO {
	out := make([]ProfileListItemDTO, 0, len(items))
	for _, r := range items {
		out = append(out, FromRanked(r, viewer))
	}
	return out
}
