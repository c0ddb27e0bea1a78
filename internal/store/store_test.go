package store_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/takasapp/takas-admin-api/internal/dataset"
	"github.com/takasapp/takas-admin-api/internal/models"
	"github.com/takasapp/takas-admin-api/internal/store"
)

var fixedNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()

	genOpts := dataset.Options{
		Seed:          42,
		Users:         20,
		Products:      150,
		Offers:        30,
		Threads:       15,
		Messages:      100,
		Notifications: 40,
		Reports:       10,
		Now:           fixedNow,
	}

	logger := zerolog.New(io.Discard)
	opts = append([]store.Option{store.WithClock(func() time.Time { return fixedNow })}, opts...)

	st, err := store.New(genOpts, logger, opts...)
	require.NoError(t, err)
	return st
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	_, err := store.New(dataset.Options{Seed: 1, Users: -5}, zerolog.New(io.Discard))
	require.Error(t, err)
}

func TestSnapshotIsStableAcrossMutations(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	before := st.Snapshot()
	user := before.Users[0]

	require.True(t, st.ToggleUserVerified(ctx, user.ID))

	// The earlier snapshot keeps its original value.
	held, ok := before.UserByID(user.ID)
	require.True(t, ok)
	require.Equal(t, user.Verified, held.Verified)

	after, ok := st.Snapshot().UserByID(user.ID)
	require.True(t, ok)
	require.Equal(t, !user.Verified, after.Verified)
}

func TestVersionIncrementsOnAppliedMutationsOnly(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.Equal(t, uint64(0), st.Version())

	require.True(t, st.ToggleUserVerified(ctx, st.Snapshot().Users[0].ID))
	require.Equal(t, uint64(1), st.Version())

	require.False(t, st.ToggleUserVerified(ctx, "missing"))
	require.Equal(t, uint64(1), st.Version())
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.False(t, st.ToggleUserVerified(ctx, "missing"))
	require.False(t, st.BanUser(ctx, "missing"))
	require.False(t, st.UnbanUser(ctx, "missing"))
	require.False(t, st.ToggleProductPremium(ctx, "missing", nil))
	require.False(t, st.MarkProductExchanged(ctx, "missing", true))
	require.False(t, st.ToggleProductHidden(ctx, "missing"))
	require.False(t, st.ForceAcceptOffer(ctx, "missing"))
	require.False(t, st.ForceRejectOffer(ctx, "missing"))
	require.False(t, st.ForceCancelOffer(ctx, "missing"))
	require.False(t, st.ResolveReport(ctx, "missing", models.ReportResolved, ""))
	require.False(t, st.UpdateBanner(ctx, "missing", store.BannerPatch{}))
	require.False(t, st.DeleteBanner(ctx, "missing"))
}

func TestBanAndUnbanUser(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// The first generated user is the admin.
	admin := st.Snapshot().Users[0]
	require.Equal(t, models.RoleAdmin, admin.Role)

	require.True(t, st.BanUser(ctx, admin.ID))
	banned, ok := st.Snapshot().UserByID(admin.ID)
	require.True(t, ok)
	require.Equal(t, models.RoleUser, banned.Role)
	require.False(t, banned.OnlineStatus)

	require.True(t, st.UnbanUser(ctx, admin.ID))
	unbanned, ok := st.Snapshot().UserByID(admin.ID)
	require.True(t, ok)
	require.True(t, unbanned.OnlineStatus)
}

func findProduct(t *testing.T, snap *dataset.Snapshot, premium bool) models.Product {
	t.Helper()
	for _, p := range snap.Products {
		if p.Premium == premium {
			return p
		}
	}
	t.Fatalf("no product with premium=%v in snapshot", premium)
	return models.Product{}
}

func TestToggleProductPremiumExplicitTier(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	product := findProduct(t, st.Snapshot(), false)

	tier := models.PremiumVitrin
	require.True(t, st.ToggleProductPremium(ctx, product.ID, &tier))

	updated, ok := st.Snapshot().ProductByID(product.ID)
	require.True(t, ok)
	require.True(t, updated.Premium)
	require.True(t, updated.IsAd)
	require.Equal(t, models.PremiumVitrin, updated.PremiumType)
	require.NotNil(t, updated.PremiumExpiryDate)
	require.Equal(t, fixedNow.AddDate(0, 0, 7), *updated.PremiumExpiryDate)
}

func TestToggleProductPremiumExplicitNoneTurnsOff(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	product := findProduct(t, st.Snapshot(), true)

	tier := models.PremiumNone
	require.True(t, st.ToggleProductPremium(ctx, product.ID, &tier))

	updated, ok := st.Snapshot().ProductByID(product.ID)
	require.True(t, ok)
	require.False(t, updated.Premium)
	require.False(t, updated.IsAd)
	require.Equal(t, models.PremiumNone, updated.PremiumType)
	require.Nil(t, updated.PremiumExpiryDate)
}

func TestToggleProductPremiumAlternatesTier(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	product := findProduct(t, st.Snapshot(), false)

	// First flip turns premium on as vitrin.
	require.True(t, st.ToggleProductPremium(ctx, product.ID, nil))
	first, _ := st.Snapshot().ProductByID(product.ID)
	require.True(t, first.Premium)
	require.Equal(t, models.PremiumVitrin, first.PremiumType)

	// Second flip turns it off.
	require.True(t, st.ToggleProductPremium(ctx, product.ID, nil))
	second, _ := st.Snapshot().ProductByID(product.ID)
	require.False(t, second.Premium)
	require.Nil(t, second.PremiumExpiryDate)

	// Third flip turns it back on with the other tier.
	require.True(t, st.ToggleProductPremium(ctx, product.ID, nil))
	third, _ := st.Snapshot().ProductByID(product.ID)
	require.True(t, third.Premium)
	require.Equal(t, models.PremiumFeatured, third.PremiumType)
}

func TestToggleProductPremiumOffThenOnSwitchesTier(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	product := findProduct(t, st.Snapshot(), true)
	originalTier := product.PremiumType
	require.NotEqual(t, models.PremiumNone, originalTier)

	require.True(t, st.ToggleProductPremium(ctx, product.ID, nil))
	off, _ := st.Snapshot().ProductByID(product.ID)
	require.False(t, off.Premium)
	require.Equal(t, models.PremiumNone, off.PremiumType)

	require.True(t, st.ToggleProductPremium(ctx, product.ID, nil))
	on, _ := st.Snapshot().ProductByID(product.ID)
	require.True(t, on.Premium)
	require.NotEqual(t, models.PremiumNone, on.PremiumType)
	require.NotEqual(t, originalTier, on.PremiumType)
}

func TestToggleProductPremiumKeepsExistingExpiry(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	product := findProduct(t, st.Snapshot(), true)
	require.NotNil(t, product.PremiumExpiryDate)
	existing := *product.PremiumExpiryDate

	tier := models.PremiumFeatured
	require.True(t, st.ToggleProductPremium(ctx, product.ID, &tier))

	updated, _ := st.Snapshot().ProductByID(product.ID)
	require.Equal(t, models.PremiumFeatured, updated.PremiumType)
	require.NotNil(t, updated.PremiumExpiryDate)
	require.Equal(t, existing, *updated.PremiumExpiryDate)
}

func TestMarkProductExchangedLeavesStatusAlone(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	product := st.Snapshot().Products[0]
	require.True(t, st.MarkProductExchanged(ctx, product.ID, !product.IsExchanged))

	updated, _ := st.Snapshot().ProductByID(product.ID)
	require.Equal(t, !product.IsExchanged, updated.IsExchanged)
	require.Equal(t, product.Status, updated.Status)
}

func TestForceOfferStatusBumpsUpdatedAt(t *testing.T) {
	later := fixedNow.Add(48 * time.Hour)
	st := newTestStore(t, store.WithClock(func() time.Time { return later }))
	ctx := context.Background()

	offer := st.Snapshot().Offers[0]
	require.True(t, st.ForceAcceptOffer(ctx, offer.ID))

	var updated models.SwapOffer
	for _, o := range st.Snapshot().Offers {
		if o.ID == offer.ID {
			updated = o
		}
	}
	require.Equal(t, models.OfferAccepted, updated.Status)
	require.Equal(t, later, updated.UpdatedAt)
	require.True(t, updated.UpdatedAt.After(offer.UpdatedAt))
	require.Equal(t, offer.CreatedAt, updated.CreatedAt)
}

func TestResolveReport(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	report := st.Snapshot().Reports[0]
	require.True(t, st.ResolveReport(ctx, report.ID, models.ReportResolved, "handled"))

	var updated models.ReportItem
	for _, r := range st.Snapshot().Reports {
		if r.ID == report.ID {
			updated = r
		}
	}
	require.Equal(t, models.ReportResolved, updated.Status)
	require.Equal(t, "handled", updated.ResolutionNote)
}

func TestBannerLifecycle(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	banner := models.Banner{
		ID:        "b_test",
		Title:     "Yaz Takas Festivali",
		ImageURL:  "https://picsum.photos/seed/900/1200/400",
		StartDate: fixedNow,
		EndDate:   fixedNow.AddDate(0, 0, 14),
		IsActive:  true,
		Priority:  9,
	}

	initial := len(st.Snapshot().Banners)
	require.True(t, st.AddBanner(ctx, banner))
	require.Len(t, st.Snapshot().Banners, initial+1)

	// Duplicate and empty ids are rejected.
	require.False(t, st.AddBanner(ctx, banner))
	require.False(t, st.AddBanner(ctx, models.Banner{Title: "kimliksiz"}))

	title := "Kis Takas Festivali"
	active := false
	require.True(t, st.UpdateBanner(ctx, banner.ID, store.BannerPatch{Title: &title, IsActive: &active}))

	var updated models.Banner
	for _, b := range st.Snapshot().Banners {
		if b.ID == banner.ID {
			updated = b
		}
	}
	require.Equal(t, title, updated.Title)
	require.False(t, updated.IsActive)
	require.Equal(t, banner.ImageURL, updated.ImageURL)

	require.True(t, st.DeleteBanner(ctx, banner.ID))
	require.Len(t, st.Snapshot().Banners, initial)
	require.False(t, st.DeleteBanner(ctx, banner.ID))
}

func TestRegenerateRestoresSeededDataset(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	original := st.Snapshot()
	require.True(t, st.BanUser(ctx, original.Users[0].ID))

	regenerated, err := st.Regenerate(ctx)
	require.NoError(t, err)
	require.Equal(t, original, regenerated)
	require.Equal(t, uint64(2), st.Version())
}

func TestSubscribeReceivesChanges(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	changes, cancel := st.Subscribe()
	defer cancel()

	require.True(t, st.ToggleUserVerified(ctx, st.Snapshot().Users[0].ID))

	select {
	case change := <-changes:
		require.Equal(t, uint64(1), change.Version)
		require.Equal(t, "toggle_user_verified", change.Op)
	case <-time.After(time.Second):
		t.Fatal("no change received")
	}
}
