// Package user holds the minimal account aggregate the platform needs:
// authentication itself is delegated to the token layer, but accounts carry
// the denormalized current plan used as the resolver's cached fallback.
package user

import (
	"fmt"
	"strings"
	"time"
)

// Role values carried in auth tokens.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User represents an account that can own a profile and hold subscriptions.
type User struct {
	id          uint
	email       string
	role        string
	currentPlan string // denormalized; refreshed on subscription changes
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewUser creates a member account.
func NewUser(email string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}

	now := time.Now().UTC()
	return &User{
		email:     email,
		role:      RoleMember,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(id uint, email, role, currentPlan string, version int, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if role == "" {
		role = RoleMember
	}

	return &User{
		id:          id,
		email:       email,
		role:        role,
		currentPlan: currentPlan,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) Role() string         { return u.role }
func (u *User) CurrentPlan() string  { return u.currentPlan }
func (u *User) Version() int         { return u.version }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetID sets the database ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// IsAdmin reports whether the account holds the admin role.
func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

// SetCurrentPlan refreshes the denormalized plan cache. An empty value
// clears it, letting the resolver fall through to the free tier.
func (u *User) SetCurrentPlan(planSlug string) {
	planSlug = strings.ToLower(strings.TrimSpace(planSlug))
	if u.currentPlan == planSlug {
		return
	}
	u.currentPlan = planSlug
	u.updatedAt = time.Now().UTC()
	u.version++
}
