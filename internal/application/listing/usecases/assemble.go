package usecases

import (
	"context"

	"github.com/vitrine-app/vitrine/internal/domain/profile"
	"github.com/vitrine-app/vitrine/internal/domain/ranking"
	"github.com/vitrine-app/vitrine/internal/domain/subscription"
	"github.com/vitrine-app/vitrine/internal/domain/user"
)

// candidateSources batches the per-account rows a candidate set needs so
// assembly stays at three queries regardless of page size.
type candidateSources struct {
	subscriptions map[uint][]*subscription.Subscription
	users         map[uint]*user.User
}

func loadCandidateSources(
	ctx context.Context,
	subscriptionRepo subscription.Repository,
	userRepo user.Repository,
	profiles []*profile.Profile,
) (candidateSources, error) {
	userIDs := make([]uint, 0, len(profiles))
	seen := make(map[uint]struct{}, len(profiles))
	for _, p := range profiles {
		if _, ok := seen[p.UserID()]; ok {
			continue
		}
		seen[p.UserID()] = struct{}{}
		userIDs = append(userIDs, p.UserID())
	}

	src := candidateSources{}
	if len(userIDs) == 0 {
		return src, nil
	}

	subs, err := subscriptionRepo.ListByUserIDs(ctx, userIDs)
	if err != nil {
		return src, err
	}
	users, err := userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return src, err
	}
	src.subscriptions = subs
	src.users = users
	return src, nil
}

// buildCandidate snapshots one profile and its account rows for the ranking
// core.
func buildCandidate(p *profile.Profile, src candidateSources) ranking.Candidate {
	cand := ranking.Candidate{
		SID:               p.SID(),
		DisplayName:       p.DisplayName(),
		City:              p.City(),
		Bio:               p.BioHTML(), // rendered form; empty exactly when the raw bio is

		Contact:           p.Contact(),
		Images:            p.Images(),
		Age:               p.Age(),
		AvailableNow:      p.AvailableNow(),
		RankingSuspended:  p.RankingSuspended(),
		RankingBoostUntil: p.RankingBoostUntil(),
		LastActiveAt:      p.LastActiveAt(),
		CreatedAt:         p.CreatedAt(),
	}
	if override := p.ManualPlanID(); override != nil {
		cand.ManualPlanID = *override
	}
	if u, ok := src.users[p.UserID()]; ok {
		cand.AccountPlanID = u.CurrentPlan()
	}
	for _, s := range src.subscriptions[p.UserID()] {
		cand.Subscriptions = append(cand.Subscriptions, s.Snapshot())
	}
	return cand
}

func buildCandidates(profiles []*profile.Profile, src candidateSources) []ranking.Candidate {
	cands := make([]ranking.Candidate, 0, len(profiles))
	for _, p := range profiles {
		cands = append(cands, buildCandidate(p, src))
	}
	return cands
}
