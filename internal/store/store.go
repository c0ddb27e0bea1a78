// Package store owns the current dataset snapshot and is its only writer.
// Every mutation produces a complete new snapshot; holders of an earlier
// snapshot never observe a change. Writes are serialized behind a single
// mutex so cross-field invariants (premium flags and expiry, offer status
// and updatedAt) always move together.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/takasapp/takas-admin-api/internal/dataset"
	"github.com/takasapp/takas-admin-api/internal/models"
	"github.com/takasapp/takas-admin-api/internal/observability"
)

// Store holds the current snapshot and exposes the named mutation
// operations. Mutations on an unknown identifier are no-ops: the store does
// not distinguish a stale UI reference from a programmer error and prefers
// availability over strictness.
type Store struct {
	mu      sync.RWMutex
	snap    *dataset.Snapshot
	version uint64

	opts   dataset.Options
	now    func() time.Time
	logger zerolog.Logger
	tracer trace.Tracer
	broker *broker

	// lastTier remembers the premium tier a listing had before it was
	// turned off, so an implicit re-toggle can alternate the tier. The
	// snapshot cannot carry this: premiumType is none whenever premium is
	// off. Guarded by mu.
	lastTier map[models.ID]models.PremiumType
}

// Option customises store construction.
type Option func(*Store)

// WithClock overrides the time source used for mutation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New generates the initial snapshot and returns a ready store.
func New(opts dataset.Options, logger zerolog.Logger, storeOpts ...Option) (*Store, error) {
	s := &Store{
		opts:   opts,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger.With().Str("component", "mock_store").Logger(),
		tracer: otel.Tracer("github.com/takasapp/takas-admin-api/internal/store"),
		broker: newBroker(),

		lastTier: make(map[models.ID]models.PremiumType),
	}
	for _, opt := range storeOpts {
		opt(s)
	}

	snap, err := s.generate()
	if err != nil {
		return nil, fmt.Errorf("initial generation: %w", err)
	}
	s.snap = snap

	return s, nil
}

func (s *Store) generate() (*dataset.Snapshot, error) {
	start := time.Now()
	snap, err := dataset.Generate(s.opts)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	observability.GenerationSeconds().Observe(elapsed.Seconds())
	setSnapshotGauges(snap)

	s.logger.Info().
		Int64("seed", snap.Seed).
		Int("users", len(snap.Users)).
		Int("products", len(snap.Products)).
		Int("offers", len(snap.Offers)).
		Int("threads", len(snap.Threads)).
		Int("messages", len(snap.Messages)).
		Dur("elapsed", elapsed).
		Msg("dataset snapshot generated")

	return snap, nil
}

func setSnapshotGauges(snap *dataset.Snapshot) {
	gauge := observability.SnapshotEntities()
	gauge.WithLabelValues("users").Set(float64(len(snap.Users)))
	gauge.WithLabelValues("products").Set(float64(len(snap.Products)))
	gauge.WithLabelValues("offers").Set(float64(len(snap.Offers)))
	gauge.WithLabelValues("threads").Set(float64(len(snap.Threads)))
	gauge.WithLabelValues("messages").Set(float64(len(snap.Messages)))
	gauge.WithLabelValues("notifications").Set(float64(len(snap.Notifications)))
	gauge.WithLabelValues("reports").Set(float64(len(snap.Reports)))
	gauge.WithLabelValues("banners").Set(float64(len(snap.Banners)))
}

// Snapshot returns the current snapshot. The returned value is immutable:
// later mutations replace the store's snapshot rather than editing it.
func (s *Store) Snapshot() *dataset.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Version increments on every applied mutation, including regeneration.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Subscribe registers a change listener. The returned cancel func must be
// called when the listener is done.
func (s *Store) Subscribe() (<-chan Change, func()) {
	return s.broker.subscribe()
}

// Regenerate discards the current snapshot and rebuilds it from the
// originally configured seed and counts.
func (s *Store) Regenerate(ctx context.Context) (*dataset.Snapshot, error) {
	_, span := s.tracer.Start(ctx, "store.regenerate")
	defer span.End()

	snap, err := s.generate()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.mu.Lock()
	s.snap = snap
	s.version++
	s.lastTier = make(map[models.ID]models.PremiumType)
	version := s.version
	s.mu.Unlock()

	observability.Mutations().WithLabelValues("regenerate").Inc()
	s.broker.publish(Change{Version: version, Op: "regenerate"})

	return snap, nil
}

// apply runs a copy-on-write mutation under the writer lock. mutate
// receives the current snapshot and returns the replacement, or ok=false
// when the target identifier does not exist.
func (s *Store) apply(ctx context.Context, op string, id models.ID, mutate func(*dataset.Snapshot) (*dataset.Snapshot, bool)) bool {
	_, span := s.tracer.Start(ctx, "store."+op, trace.WithAttributes(
		attribute.String("entity.id", id.String()),
	))
	defer span.End()

	s.mu.Lock()
	next, ok := mutate(s.snap)
	if ok {
		s.snap = next
		s.version++
	}
	version := s.version
	s.mu.Unlock()

	if !ok {
		s.logger.Debug().Str("op", op).Str("id", id.String()).Msg("mutation target not found, no-op")
		return false
	}

	observability.Mutations().WithLabelValues(op).Inc()
	s.broker.publish(Change{Version: version, Op: op})
	s.logger.Debug().Str("op", op).Str("id", id.String()).Msg("mutation applied")

	return true
}

// ToggleUserVerified flips the verified flag of the given user.
func (s *Store) ToggleUserVerified(ctx context.Context, userID models.ID) bool {
	return s.apply(ctx, "toggle_user_verified", userID, func(snap *dataset.Snapshot) (*dataset.Snapshot, bool) {
		users, ok := patchUser(snap.Users, userID, func(u models.User) models.User {
			u.Verified = !u.Verified
			return u
		})
		if !ok {
			return snap, false
		}
		next := *snap
		next.Users = users
		return &next, true
	})
}

// BanUser demotes the user to the plain user role and marks them offline.
// Mock-only moderation: there are no real suspension semantics.
func (s *Store) BanUser(ctx context.Context, userID models.ID) bool {
	return s.apply(ctx, "ban_user", userID, func(snap *dataset.Snapshot) (*dataset.Snapshot, bool) {
		users, ok := patchUser(snap.Users, userID, func(u models.User) models.User {
			u.Role = models.RoleUser
			u.OnlineStatus = false
			return u
		})
		if !ok {
			return snap, false
		}
		next := *snap
		next.Users = users
		return &next, true
	})
}

// UnbanUser marks the user online again.
func (s *Store) UnbanUser(ctx context.Context, userID models.ID) bool {
	return s.apply(ctx, "unban_user", userID, func(snap *dataset.Snapshot) (*dataset.Snapshot, bool) {
		users, ok := patchUser(snap.Users, userID, func(u models.User) models.User {
			u.OnlineStatus = true
			return u
		})
		if !ok {
			return snap, false
		}
		next := *snap
		next.Users = users
		return &next, true
	})
}

// ToggleProductPremium switches a listing's premium placement. With an
// explicit premiumType the listing is set to that tier (PremiumNone turns
// premium off). Without one the premium flag is flipped, alternating the
// tier between featured and vitrin each time it turns on. All branches keep
// premium, premiumType and expiry consistent.
func (s *Store) ToggleProductPremium(ctx context.Context, productID models.ID, premiumType *models.PremiumType) bool {
	return s.apply(ctx, "toggle_product_premium", productID, func(snap *dataset.Snapshot) (*dataset.Snapshot, bool) {
		products, ok := patchProduct(snap.Products, productID, func(p models.Product) models.Product {
			nextPremium := !p.Premium
			if premiumType != nil {
				nextPremium = *premiumType != models.PremiumNone
			}

			nextType := models.PremiumNone
			if nextPremium {
				switch {
				case premiumType != nil:
					nextType = *premiumType
				case s.lastTier[productID] == models.PremiumVitrin:
					nextType = models.PremiumFeatured
				default:
					nextType = models.PremiumVitrin
				}
			}

			if nextPremium {
				s.lastTier[productID] = nextType
			} else if p.PremiumType != models.PremiumNone {
				s.lastTier[productID] = p.PremiumType
			}

			var expiry *time.Time
			if nextPremium {
				if p.PremiumExpiryDate != nil {
					expiry = p.PremiumExpiryDate
				} else {
					e := s.now().AddDate(0, 0, 7)
					expiry = &e
				}
			}

			p.Premium = nextPremium
			p.IsAd = nextPremium
			p.PremiumType = nextType
			p.PremiumExpiryDate = expiry
			return p
		})
		if !ok {
			return snap, false
		}
		next := *snap
		next.Products = products
		return &next, true
	})
}

// MarkProductExchanged sets the exchanged flag without touching status.
func (s *Store) MarkProductExchanged(ctx context.Context, productID models.ID, exchanged bool) bool {
	return s.apply(ctx, "mark_product_exchanged", productID, func(snap *dataset.Snapshot) (*dataset.Snapshot, bool) {
		products, ok := patchProduct(snap.Products, productID, func(p models.Product) models.Product {
			p.IsExchanged = exchanged
			return p
		})
		if !ok {
			return snap, false
		}
		next := *snap
		next.Products = products
		return &next, true
	})
}

// ToggleProductHidden flips the moderation hidden flag.
func (s *Store) ToggleProductHidden(ctx context.Context, productID models.ID) bool {
	return s.apply(ctx, "toggle_product_hidden", productID, func(snap *dataset.Snapshot) (*dataset.Snapshot, bool) {
		products, ok := patchProduct(snap.Products, productID, func(p models.Product) models.Product {
			p.Hidden = !p.Hidden
			return p
		})
		if !ok {
			return snap, false
		}
		next := *snap
		next.Products = products
		return &next, true
	})
}

// ForceAcceptOffer unconditionally sets the offer to accepted. These forced
// transitions are administrative overrides: they skip any pending-only
// precondition a client UI might enforce.
func (s *Store) ForceAcceptOffer(ctx context.Context, offerID models.ID) bool {
	return s.forceOfferStatus(ctx, "force_accept_offer", offerID, models.OfferAccepted)
}

// ForceRejectOffer unconditionally sets the offer to rejected.
func (s *Store) ForceRejectOffer(ctx context.Context, offerID models.ID) bool {
	return s.forceOfferStatus(ctx, "force_reject_offer", offerID, models.OfferRejected)
}

// ForceCancelOffer unconditionally sets the offer to cancelled.
func (s *Store) ForceCancelOffer(ctx context.Context, offerID models.ID) bool {
	return s.forceOfferStatus(ctx, "force_cancel_offer", offerID, models.OfferCancelled)
}

func (s *Store) forceOfferStatus(ctx context.Context, op string, offerID models.ID, status models.OfferStatus) bool {
	return s.apply(ctx, op, offerID, func(snap *dataset.Snapshot) (*dataset.Snapshot, bool) {
		offers, ok := patchOffer(snap.Offers, offerID, func(o models.SwapOffer) models.SwapOffer {
			o.Status = status
			o.UpdatedAt = s.now()
			return o
		})
		if !ok {
			return snap, false
		}
		next := *snap
		next.Offers = offers
		return &next, true
	})
}

// ResolveReport sets a report's moderation status and resolution note.
func (s *Store) ResolveReport(ctx context.Context, reportID models.ID, status models.ReportStatus, note string) bool {
	return s.apply(ctx, "resolve_report", reportID, func(snap *dataset.Snapshot) (*dataset.Snapshot, bool) {
		reports, ok := patchReport(snap.Reports, reportID, func(r models.ReportItem) models.ReportItem {
			r.Status = status
			r.ResolutionNote = note
			return r
		})
		if !ok {
			return snap, false
		}
		next := *snap
		next.Reports = reports
		return &next, true
	})
}

// AddBanner appends a banner. The caller supplies the identifier; an empty
// or duplicate id is rejected.
func (s *Store) AddBanner(ctx context.Context, banner models.Banner) bool {
	if banner.ID.IsZero() {
		return false
	}
	return s.apply(ctx, "add_banner", banner.ID, func(snap *dataset.Snapshot) (*dataset.Snapshot, bool) {
		for _, b := range snap.Banners {
			if b.ID == banner.ID {
				return snap, false
			}
		}
		banners := make([]models.Banner, 0, len(snap.Banners)+1)
		banners = append(banners, snap.Banners...)
		banners = append(banners, banner)

		next := *snap
		next.Banners = banners
		return &next, true
	})
}

// BannerPatch is a shallow-merge update: nil fields keep their current
// value.
type BannerPatch struct {
	Title       *string
	Description *string
	ImageURL    *string
	TargetURL   *string
	StartDate   *time.Time
	EndDate     *time.Time
	IsActive    *bool
	Priority    *int
}

// UpdateBanner shallow-merges the patch into the identified banner.
func (s *Store) UpdateBanner(ctx context.Context, bannerID models.ID, patch BannerPatch) bool {
	return s.apply(ctx, "update_banner", bannerID, func(snap *dataset.Snapshot) (*dataset.Snapshot, bool) {
		banners, ok := patchBanner(snap.Banners, bannerID, func(b models.Banner) models.Banner {
			if patch.Title != nil {
				b.Title = *patch.Title
			}
			if patch.Description != nil {
				b.Description = *patch.Description
			}
			if patch.ImageURL != nil {
				b.ImageURL = *patch.ImageURL
			}
			if patch.TargetURL != nil {
				b.TargetURL = *patch.TargetURL
			}
			if patch.StartDate != nil {
				b.StartDate = *patch.StartDate
			}
			if patch.EndDate != nil {
				b.EndDate = *patch.EndDate
			}
			if patch.IsActive != nil {
				b.IsActive = *patch.IsActive
			}
			if patch.Priority != nil {
				b.Priority = *patch.Priority
			}
			return b
		})
		if !ok {
			return snap, false
		}
		next := *snap
		next.Banners = banners
		return &next, true
	})
}

// DeleteBanner removes the banner by id. No cascading effects.
func (s *Store) DeleteBanner(ctx context.Context, bannerID models.ID) bool {
	return s.apply(ctx, "delete_banner", bannerID, func(snap *dataset.Snapshot) (*dataset.Snapshot, bool) {
		idx := -1
		for i, b := range snap.Banners {
			if b.ID == bannerID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return snap, false
		}

		banners := make([]models.Banner, 0, len(snap.Banners)-1)
		banners = append(banners, snap.Banners[:idx]...)
		banners = append(banners, snap.Banners[idx+1:]...)

		next := *snap
		next.Banners = banners
		return &next, true
	})
}
