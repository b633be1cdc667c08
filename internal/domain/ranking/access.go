package ranking

// Access holds the subject-side gating decision for one profile.
type Access struct {
	CanShowContact bool
	Priority       int
}

// ResolveAccess computes the subject-side access fields for a plan tier.
// CanShowContact is a property of the subject's plan alone; whether a given
// viewer actually sees gated content is decided by ShouldRevealContent.
func (c *Catalog) ResolveAccess(plan PlanID) Access {
	return Access{
		CanShowContact: c.CanShowContact(plan),
		Priority:       c.BasePriority(plan),
	}
}

// Viewer is the requester of a listing. It is always passed in explicitly;
// the core never consults ambient session state. A failed or ambiguous
// subscription lookup must be mapped to HasActiveSubscription=false by the
// caller: gating fails closed.
type Viewer struct {
	AccountID             uint
	Authenticated         bool
	HasActiveSubscription bool
}

// AnonymousViewer returns the zero-access viewer.
func AnonymousViewer() Viewer {
	return Viewer{}
}

// ShouldRevealContent decides whether gated fields (bio, contact, full
// gallery) are exposed: the subject must be eligible to show contact AND the
// viewer must hold paid access. Anonymous viewers never qualify.
func ShouldRevealContent(viewerHasActiveSubscription, subjectCanShowContact bool) bool {
	return viewerHasActiveSubscription && subjectCanShowContact
}
