package valueobjects

// ProfileStatus is the listing lifecycle state of a profile. Profiles are
// never hard-deleted; they transition to suspended or rejected instead.
type ProfileStatus string

const (
	StatusPending   ProfileStatus = "pending"
	StatusListed    ProfileStatus = "listed"
	StatusSuspended ProfileStatus = "suspended"
	StatusRejected  ProfileStatus = "rejected"
)

func (s ProfileStatus) String() string {
	return string(s)
}

// IsListable reports whether the profile may appear in public listings.
func (s ProfileStatus) IsListable() bool {
	return s == StatusListed
}

func (s ProfileStatus) CanTransitionTo(target ProfileStatus) bool {
	transitions := map[ProfileStatus][]ProfileStatus{
		StatusPending:   {StatusListed, StatusRejected},
		StatusListed:    {StatusSuspended},
		StatusSuspended: {StatusListed},
		StatusRejected:  {StatusPending},
	}

	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

var ValidStatuses = map[ProfileStatus]bool{
	StatusPending:   true,
	StatusListed:    true,
	StatusSuspended: true,
	StatusRejected:  true,
}
