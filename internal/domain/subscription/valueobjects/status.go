package valueobjects

// SubscriptionStatus is the lifecycle state of a tier subscription.
// Pending subscriptions await payment-proof review.
type SubscriptionStatus string

const (
	StatusPending  SubscriptionStatus = "pending"
	StatusActive   SubscriptionStatus = "active"
	StatusRejected SubscriptionStatus = "rejected"
	StatusExpired  SubscriptionStatus = "expired"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

// CountsForAccess reports whether the status can grant viewer access or
// ranking priority (grace window handling is the ranking core's concern).
func (s SubscriptionStatus) CountsForAccess() bool {
	return s == StatusActive
}

func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	transitions := map[SubscriptionStatus][]SubscriptionStatus{
		StatusPending:  {StatusActive, StatusRejected},
		StatusActive:   {StatusExpired},
		StatusRejected: {},
		StatusExpired:  {},
	}

	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusPending:  true,
	StatusActive:   true,
	StatusRejected: true,
	StatusExpired:  true,
}
