package usecases

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrine-app/vitrine/internal/application/listing/services"
	"github.com/vitrine-app/vitrine/internal/domain/profile"
	profilevo "github.com/vitrine-app/vitrine/internal/domain/profile/valueobjects"
	"github.com/vitrine-app/vitrine/internal/domain/subscription"
	subscriptionvo "github.com/vitrine-app/vitrine/internal/domain/subscription/valueobjects"
	"github.com/vitrine-app/vitrine/internal/domain/user"
	"github.com/vitrine-app/vitrine/internal/shared/errors"
	"github.com/vitrine-app/vitrine/internal/shared/logger"
)

type fakeProfileRepo struct {
	profiles []*profile.Profile
	err      error
}

func (f *fakeProfileRepo) Create(ctx context.Context, p *profile.Profile) error { return f.err }
func (f *fakeProfileRepo) Update(ctx context.Context, p *profile.Profile) error { return f.err }

func (f *fakeProfileRepo) GetByID(ctx context.Context, profileID uint) (*profile.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.profiles {
		if p.ID() == profileID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) GetBySID(ctx context.Context, sid string) (*profile.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.profiles {
		if p.SID() == sid {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID uint) (*profile.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.profiles {
		if p.UserID() == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) ListListed(ctx context.Context, filter profile.ListFilter) ([]*profile.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*profile.Profile
	for _, p := range f.profiles {
		if !p.Status().IsListable() {
			continue
		}
		if filter.City != "" && !strings.EqualFold(p.City(), filter.City) {
			continue
		}
		if filter.AvailableNow && !p.AvailableNow() {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProfileRepo) TouchLastActive(ctx context.Context, profileID uint, at time.Time) error {
	return f.err
}

type fakeSubscriptionRepo struct {
	byUser map[uint][]*subscription.Subscription
	err    error
}

func (f *fakeSubscriptionRepo) Create(ctx context.Context, s *subscription.Subscription) error {
	return f.err
}
func (f *fakeSubscriptionRepo) Update(ctx context.Context, s *subscription.Subscription) error {
	return f.err
}
func (f *fakeSubscriptionRepo) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	return nil, f.err
}
func (f *fakeSubscriptionRepo) GetBySID(ctx context.Context, sid string) (*subscription.Subscription, error) {
	return nil, f.err
}

func (f *fakeSubscriptionRepo) ListByUserID(ctx context.Context, userID uint) ([]*subscription.Subscription, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byUser[userID], nil
}

func (f *fakeSubscriptionRepo) ListByUserIDs(ctx context.Context, userIDs []uint) (map[uint][]*subscription.Subscription, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[uint][]*subscription.Subscription, len(userIDs))
	for _, id := range userIDs {
		if subs, ok := f.byUser[id]; ok {
			out[id] = subs
		}
	}
	return out, nil
}

func (f *fakeSubscriptionRepo) ListActiveEndedBefore(ctx context.Context, cutoff time.Time) ([]*subscription.Subscription, error) {
	return nil, f.err
}

func (f *fakeSubscriptionRepo) ListPendingReview(ctx context.Context) ([]*subscription.Subscription, error) {
	return nil, f.err
}

type fakeUserRepo struct {
	byID map[uint]*user.User
	err  error
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return f.err }
func (f *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return f.err }

func (f *fakeUserRepo) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[userID], nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, f.err
}

func (f *fakeUserRepo) GetByIDs(ctx context.Context, userIDs []uint) (map[uint]*user.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[uint]*user.User, len(userIDs))
	for _, id := range userIDs {
		if u, ok := f.byID[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type profileOverrides struct {
	status       profilevo.ProfileStatus
	city         string
	bioHTML      string
	contact      string
	images       []string
	availableNow bool
	lastActiveAt *time.Time
	createdAt    time.Time
}

func makeProfile(t *testing.T, id, userID uint, name string, ov profileOverrides) *profile.Profile {
	t.Helper()
	status := ov.status
	if status == "" {
		status = profilevo.StatusListed
	}
	createdAt := ov.createdAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC().Add(-30 * 24 * time.Hour)
	}
	p, err := profile.ReconstructProfile(profile.ReconstructParams{
		ID:           id,
		SID:          fmt.Sprintf("prf_%d", id),
		UserID:       userID,
		DisplayName:  name,
		Slug:         strings.ToLower(name),
		BioHTML:      ov.bioHTML,
		City:         ov.city,
		Contact:      ov.contact,
		Age:          30,
		Images:       ov.images,
		AvailableNow: ov.availableNow,
		Status:       status,
		LastActiveAt: ov.lastActiveAt,
		Version:      1,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	})
	require.NoError(t, err)
	return p
}

func makeActiveSub(t *testing.T, id, userID uint, planSlug string, endsIn time.Duration) *subscription.Subscription {
	t.Helper()
	now := time.Now().UTC()
	end := now.Add(endsIn)
	s, err := subscription.ReconstructSubscription(subscription.ReconstructParams{
		ID:        id,
		SID:       fmt.Sprintf("sub_%d", id),
		UserID:    userID,
		PlanSlug:  planSlug,
		Status:    subscriptionvo.StatusActive,
		StartDate: now.Add(-10 * 24 * time.Hour),
		EndDate:   &end,
		Version:   1,
		CreatedAt: now.Add(-10 * 24 * time.Hour),
		UpdatedAt: now.Add(-10 * 24 * time.Hour),
	})
	require.NoError(t, err)
	return s
}

func makeUser(t *testing.T, id uint, currentPlan string) *user.User {
	t.Helper()
	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, fmt.Sprintf("u%d@example.com", id), user.RoleMember, currentPlan, 1, now, now)
	require.NoError(t, err)
	return u
}

func newBrowseUseCase(profiles *fakeProfileRepo, subs *fakeSubscriptionRepo, users *fakeUserRepo) *BrowseProfilesUseCase {
	log := testLogger()
	return NewBrowseProfilesUseCase(
		profiles,
		subs,
		users,
		services.NewStaticCatalogProvider(nil),
		services.NewViewerResolver(subs, services.DefaultRankingSettings().GraceWindow, log),
		services.DefaultRankingSettings(),
		log,
	)
}

func TestBrowseProfiles_OrdersByEffectiveTier(t *testing.T) {
	profiles := &fakeProfileRepo{profiles: []*profile.Profile{
		makeProfile(t, 1, 1, "FreeRider", profileOverrides{}),
		makeProfile(t, 2, 2, "EliteOne", profileOverrides{}),
		makeProfile(t, 3, 3, "PremiumOne", profileOverrides{}),
	}}
	subs := &fakeSubscriptionRepo{byUser: map[uint][]*subscription.Subscription{
		2: {makeActiveSub(t, 10, 2, "elite", 24*time.Hour)},
		3: {makeActiveSub(t, 11, 3, "premium", 24*time.Hour)},
	}}
	users := &fakeUserRepo{byID: map[uint]*user.User{
		1: makeUser(t, 1, ""),
		2: makeUser(t, 2, "elite"),
		3: makeUser(t, 3, "premium"),
	}}

	result, err := newBrowseUseCase(profiles, subs, users).Execute(context.Background(), BrowseProfilesQuery{})
	require.NoError(t, err)
	require.Len(t, result.Items, 3)

	assert.Equal(t, "EliteOne", result.Items[0].DisplayName)
	assert.Equal(t, "PremiumOne", result.Items[1].DisplayName)
	assert.Equal(t, "FreeRider", result.Items[2].DisplayName)
	assert.Equal(t, int64(3), result.Total)
}

func TestBrowseProfiles_RedactsForAnonymousViewer(t *testing.T) {
	profiles := &fakeProfileRepo{profiles: []*profile.Profile{
		makeProfile(t, 1, 1, "EliteOne", profileOverrides{
			city:    "Lisbon",
			bioHTML: "<p>hello</p>",
			contact: "+351 000 000",
			images:  []string{"a.jpg", "b.jpg"},
		}),
	}}
	subs := &fakeSubscriptionRepo{byUser: map[uint][]*subscription.Subscription{
		1: {makeActiveSub(t, 10, 1, "elite", 24*time.Hour)},
	}}
	users := &fakeUserRepo{byID: map[uint]*user.User{1: makeUser(t, 1, "elite")}}

	result, err := newBrowseUseCase(profiles, subs, users).Execute(context.Background(), BrowseProfilesQuery{})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	item := result.Items[0]
	assert.False(t, item.Revealed)
	assert.Empty(t, item.Contact)
	assert.Empty(t, item.Bio)
	assert.Empty(t, item.Images)
	// Always-visible fields survive redaction.
	assert.Equal(t, "EliteOne", item.DisplayName)
	assert.Equal(t, "Lisbon", item.City)
	assert.Equal(t, "a.jpg", item.FirstImage)
	assert.True(t, item.ShowsContact)
}

func TestBrowseProfiles_RevealsOnlyEligibleSubjectsToPaidViewer(t *testing.T) {
	profiles := &fakeProfileRepo{profiles: []*profile.Profile{
		makeProfile(t, 1, 1, "EliteOne", profileOverrides{contact: "elite-contact", images: []string{"a.jpg"}}),
		makeProfile(t, 2, 2, "FreeRider", profileOverrides{contact: "free-contact", images: []string{"b.jpg"}}),
	}}
	subs := &fakeSubscriptionRepo{byUser: map[uint][]*subscription.Subscription{
		1: {makeActiveSub(t, 10, 1, "elite", 24*time.Hour)},
		9: {makeActiveSub(t, 11, 9, "premium", 24*time.Hour)}, // the viewer
	}}
	users := &fakeUserRepo{byID: map[uint]*user.User{
		1: makeUser(t, 1, "elite"),
		2: makeUser(t, 2, ""),
	}}

	result, err := newBrowseUseCase(profiles, subs, users).Execute(context.Background(), BrowseProfilesQuery{ViewerUserID: 9})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)

	elite := result.Items[0]
	free := result.Items[1]
	assert.True(t, elite.Revealed)
	assert.Equal(t, "elite-contact", elite.Contact)
	// Free-tier subjects stay redacted even for paying viewers.
	assert.False(t, free.Revealed)
	assert.Empty(t, free.Contact)
	assert.Equal(t, "b.jpg", free.FirstImage)
}

func TestBrowseProfiles_ViewerLookupFailureDeniesReveal(t *testing.T) {
	profiles := &fakeProfileRepo{profiles: []*profile.Profile{
		makeProfile(t, 1, 1, "EliteOne", profileOverrides{contact: "elite-contact"}),
	}}
	subjectSubs := &fakeSubscriptionRepo{byUser: map[uint][]*subscription.Subscription{
		1: {makeActiveSub(t, 10, 1, "elite", 24*time.Hour)},
	}}
	users := &fakeUserRepo{byID: map[uint]*user.User{1: makeUser(t, 1, "elite")}}

	log := testLogger()
	failingSubs := &fakeSubscriptionRepo{err: fmt.Errorf("connection refused")}
	uc := NewBrowseProfilesUseCase(
		profiles,
		subjectSubs,
		users,
		services.NewStaticCatalogProvider(nil),
		services.NewViewerResolver(failingSubs, services.DefaultRankingSettings().GraceWindow, log),
		services.DefaultRankingSettings(),
		log,
	)

	result, err := uc.Execute(context.Background(), BrowseProfilesQuery{ViewerUserID: 9})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.False(t, result.Items[0].Revealed)
}

func TestBrowseProfiles_CityFilter(t *testing.T) {
	profiles := &fakeProfileRepo{profiles: []*profile.Profile{
		makeProfile(t, 1, 1, "InLisbon", profileOverrides{city: "Lisbon"}),
		makeProfile(t, 2, 2, "InPorto", profileOverrides{city: "Porto"}),
	}}
	subs := &fakeSubscriptionRepo{byUser: map[uint][]*subscription.Subscription{}}
	users := &fakeUserRepo{byID: map[uint]*user.User{1: makeUser(t, 1, ""), 2: makeUser(t, 2, "")}}

	result, err := newBrowseUseCase(profiles, subs, users).Execute(context.Background(), BrowseProfilesQuery{City: "Lisbon"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "InLisbon", result.Items[0].DisplayName)
}

func TestBrowseProfiles_OffsetPaginationCarriesCursor(t *testing.T) {
	var all []*profile.Profile
	users := &fakeUserRepo{byID: map[uint]*user.User{}}
	for i := uint(1); i <= 5; i++ {
		all = append(all, makeProfile(t, i, i, fmt.Sprintf("P%d", i), profileOverrides{}))
		users.byID[i] = makeUser(t, i, "")
	}
	profiles := &fakeProfileRepo{profiles: all}
	subs := &fakeSubscriptionRepo{byUser: map[uint][]*subscription.Subscription{}}
	uc := newBrowseUseCase(profiles, subs, users)

	first, err := uc.Execute(context.Background(), BrowseProfilesQuery{Page: 1, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, first.Items, 2)
	require.NotEmpty(t, first.NextCursor)
	assert.Equal(t, first.Items[1].SID, first.NextCursor)

	second, err := uc.Execute(context.Background(), BrowseProfilesQuery{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, second.Items, 2)
	assert.NotEqual(t, first.Items[0].SID, second.Items[0].SID)
}

func TestBrowseProfiles_CursorWalkCoversAllRowsOnce(t *testing.T) {
	var all []*profile.Profile
	users := &fakeUserRepo{byID: map[uint]*user.User{}}
	for i := uint(1); i <= 5; i++ {
		all = append(all, makeProfile(t, i, i, fmt.Sprintf("P%d", i), profileOverrides{}))
		users.byID[i] = makeUser(t, i, "")
	}
	profiles := &fakeProfileRepo{profiles: all}
	subs := &fakeSubscriptionRepo{byUser: map[uint][]*subscription.Subscription{}}
	uc := newBrowseUseCase(profiles, subs, users)

	seen := make(map[string]bool)
	cursor := ""
	for pages := 0; pages < 10; pages++ {
		result, err := uc.Execute(context.Background(), BrowseProfilesQuery{PageSize: 2, Cursor: cursor})
		require.NoError(t, err)
		for _, item := range result.Items {
			assert.False(t, seen[item.SID], "row %s returned twice", item.SID)
			seen[item.SID] = true
		}
		if result.NextCursor == "" {
			break
		}
		cursor = result.NextCursor
	}
	assert.Len(t, seen, 5)
}

func TestBrowseProfiles_InvalidAgeBounds(t *testing.T) {
	uc := newBrowseUseCase(
		&fakeProfileRepo{},
		&fakeSubscriptionRepo{},
		&fakeUserRepo{},
	)

	_, err := uc.Execute(context.Background(), BrowseProfilesQuery{MinAge: 40, MaxAge: 20})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestBrowseProfiles_RepositoryErrorPropagates(t *testing.T) {
	uc := newBrowseUseCase(
		&fakeProfileRepo{err: fmt.Errorf("db down")},
		&fakeSubscriptionRepo{},
		&fakeUserRepo{},
	)

	_, err := uc.Execute(context.Background(), BrowseProfilesQuery{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
