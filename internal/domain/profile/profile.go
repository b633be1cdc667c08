package profile

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"

	vo "github.com/vitrine-app/vitrine/internal/domain/profile/valueobjects"
	"github.com/vitrine-app/vitrine/internal/shared/id"
)

// MaxImages caps the gallery size per profile.
const MaxImages = 12

// Profile represents the profile aggregate root: one listable entity owned
// by exactly one account.
type Profile struct {
	id          uint
	sid         string
	userID      uint
	displayName string
	urlSlug     string
	bio         string
	bioHTML     string
	city        string
	contact     string
	age         int
	images      []string
	availableNow bool
	status      vo.ProfileStatus

	manualPlanID      *string
	rankingSuspended  bool
	rankingBoostUntil *time.Time
	lastActiveAt      *time.Time

	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewProfile creates a profile in pending state for an account awaiting
// listing approval.
func NewProfile(userID uint, displayName, city string, age int) (*Profile, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, fmt.Errorf("display name is required")
	}
	if age < 0 {
		return nil, fmt.Errorf("age cannot be negative")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixProfile, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate profile sid: %w", err)
	}

	now := time.Now().UTC()
	return &Profile{
		sid:         sid,
		userID:      userID,
		displayName: displayName,
		urlSlug:     slug.Make(displayName),
		city:        strings.TrimSpace(city),
		age:         age,
		status:      vo.StatusPending,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructParams carries persisted state back into the aggregate.
type ReconstructParams struct {
	ID                uint
	SID               string
	UserID            uint
	DisplayName       string
	Slug              string
	Bio               string
	BioHTML           string
	City              string
	Contact           string
	Age               int
	Images            []string
	AvailableNow      bool
	Status            vo.ProfileStatus
	ManualPlanID      *string
	RankingSuspended  bool
	RankingBoostUntil *time.Time
	LastActiveAt      *time.Time
	Version           int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ReconstructProfile rebuilds a profile from persistence.
func ReconstructProfile(p ReconstructParams) (*Profile, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	if p.SID == "" {
		return nil, fmt.Errorf("profile SID is required")
	}
	if p.UserID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !vo.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid profile status: %s", p.Status)
	}

	return &Profile{
		id:                p.ID,
		sid:               p.SID,
		userID:            p.UserID,
		displayName:       p.DisplayName,
		urlSlug:           p.Slug,
		bio:               p.Bio,
		bioHTML:           p.BioHTML,
		city:              p.City,
		contact:           p.Contact,
		age:               p.Age,
		images:            p.Images,
		availableNow:      p.AvailableNow,
		status:            p.Status,
		manualPlanID:      p.ManualPlanID,
		rankingSuspended:  p.RankingSuspended,
		rankingBoostUntil: p.RankingBoostUntil,
		lastActiveAt:      p.LastActiveAt,
		version:           p.Version,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
	}, nil
}

func (p *Profile) ID() uint                      { return p.id }
func (p *Profile) SID() string                   { return p.sid }
func (p *Profile) UserID() uint                  { return p.userID }
func (p *Profile) DisplayName() string           { return p.displayName }
func (p *Profile) Slug() string                  { return p.urlSlug }
func (p *Profile) Bio() string                   { return p.bio }
func (p *Profile) BioHTML() string               { return p.bioHTML }
func (p *Profile) City() string                  { return p.city }
func (p *Profile) Contact() string               { return p.contact }
func (p *Profile) Age() int                      { return p.age }
func (p *Profile) Images() []string              { return p.images }
func (p *Profile) AvailableNow() bool            { return p.availableNow }
func (p *Profile) Status() vo.ProfileStatus      { return p.status }
func (p *Profile) ManualPlanID() *string         { return p.manualPlanID }
func (p *Profile) RankingSuspended() bool        { return p.rankingSuspended }
func (p *Profile) RankingBoostUntil() *time.Time { return p.rankingBoostUntil }
func (p *Profile) LastActiveAt() *time.Time      { return p.lastActiveAt }
func (p *Profile) Version() int                  { return p.version }
func (p *Profile) CreatedAt() time.Time          { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time          { return p.updatedAt }

// SetID sets the database ID (only for persistence layer use)
func (p *Profile) SetID(dbID uint) error {
	if p.id != 0 {
		return fmt.Errorf("profile ID is already set")
	}
	if dbID == 0 {
		return fmt.Errorf("profile ID cannot be zero")
	}
	p.id = dbID
	return nil
}

func (p *Profile) touch() {
	p.updatedAt = time.Now().UTC()
	p.version++
}

// Approve lists a pending profile.
func (p *Profile) Approve() error {
	if p.status == vo.StatusListed {
		return nil
	}
	if !p.status.CanTransitionTo(vo.StatusListed) {
		return fmt.Errorf("cannot approve profile with status %s", p.status)
	}
	p.status = vo.StatusListed
	p.touch()
	return nil
}

// Reject declines a pending profile.
func (p *Profile) Reject() error {
	if p.status == vo.StatusRejected {
		return nil
	}
	if !p.status.CanTransitionTo(vo.StatusRejected) {
		return fmt.Errorf("cannot reject profile with status %s", p.status)
	}
	p.status = vo.StatusRejected
	p.touch()
	return nil
}

// Suspend removes a listed profile from public listings.
func (p *Profile) Suspend() error {
	if p.status == vo.StatusSuspended {
		return nil
	}
	if !p.status.CanTransitionTo(vo.StatusSuspended) {
		return fmt.Errorf("cannot suspend profile with status %s", p.status)
	}
	p.status = vo.StatusSuspended
	p.touch()
	return nil
}

// Relist returns a suspended profile to the listings.
func (p *Profile) Relist() error {
	if p.status == vo.StatusListed {
		return nil
	}
	if !p.status.CanTransitionTo(vo.StatusListed) {
		return fmt.Errorf("cannot relist profile with status %s", p.status)
	}
	p.status = vo.StatusListed
	p.touch()
	return nil
}

// UpdateDetails applies owner edits. The bio pair arrives pre-sanitized
// from the application layer; the aggregate never runs markdown itself.
func (p *Profile) UpdateDetails(displayName, bio, bioHTML, city, contact string, age int, availableNow bool) error {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return fmt.Errorf("display name is required")
	}
	if age < 0 {
		return fmt.Errorf("age cannot be negative")
	}

	p.displayName = displayName
	p.urlSlug = slug.Make(displayName)
	p.bio = bio
	p.bioHTML = bioHTML
	p.city = strings.TrimSpace(city)
	p.contact = strings.TrimSpace(contact)
	p.age = age
	p.availableNow = availableNow
	p.touch()
	return nil
}

// ReplaceImages swaps the ordered gallery.
func (p *Profile) ReplaceImages(urls []string) error {
	if len(urls) > MaxImages {
		return fmt.Errorf("at most %d images allowed, got %d", MaxImages, len(urls))
	}
	for _, u := range urls {
		if strings.TrimSpace(u) == "" {
			return fmt.Errorf("image URL cannot be empty")
		}
	}
	p.images = urls
	p.touch()
	return nil
}

// RecordActivity stamps the owner's last activity for "online" display and
// the secondary sort signal.
func (p *Profile) RecordActivity(at time.Time) {
	at = at.UTC()
	p.lastActiveAt = &at
	p.touch()
}

// SetManualPlan installs or clears the administrator plan override. The
// value is stored as-is; normalization against the catalog happens in the
// ranking core.
func (p *Profile) SetManualPlan(planID *string) {
	p.manualPlanID = planID
	p.touch()
}

// SuspendRanking excludes the profile from priority boosts regardless of
// plan until RestoreRanking is called.
func (p *Profile) SuspendRanking() {
	if p.rankingSuspended {
		return
	}
	p.rankingSuspended = true
	p.touch()
}

// RestoreRanking lifts an administrative ranking suspension.
func (p *Profile) RestoreRanking() {
	if !p.rankingSuspended {
		return
	}
	p.rankingSuspended = false
	p.touch()
}

// Boost grants a temporary ranking boost until the given time.
func (p *Profile) Boost(until time.Time) error {
	if !until.After(time.Now().UTC()) {
		return fmt.Errorf("boost end must be in the future")
	}
	u := until.UTC()
	p.rankingBoostUntil = &u
	p.touch()
	return nil
}

// ClearBoost removes a ranking boost.
func (p *Profile) ClearBoost() {
	if p.rankingBoostUntil == nil {
		return
	}
	p.rankingBoostUntil = nil
	p.touch()
}
