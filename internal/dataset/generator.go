package dataset

import (
	"fmt"
	"sort"
	"time"

	"github.com/takasapp/takas-admin-api/internal/models"
)

// generator carries the shared random source and the snapshot being built
// through the pipeline stages.
type generator struct {
	g    *rng
	opts Options
	now  time.Time
	snap *Snapshot
}

// Generate builds a fully cross-referenced snapshot from a single seed.
// Stages run in dependency order: users before products, products before
// favorites and offers, offers before threads, threads before messages, and
// the reconciliation pass last so every derived field agrees with its
// source records.
func Generate(opts Options) (*Snapshot, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	gen := &generator{
		g:    newRNG(opts.Seed),
		opts: opts,
		now:  now,
		snap: &Snapshot{
			Seed:        opts.Seed,
			GeneratedAt: now,
			Categories:  categorySeed,
		},
	}

	gen.generateUsers()
	gen.generateProducts()
	gen.assignFavorites()
	pairs := gen.generateOffers()
	gen.generateThreads(pairs)
	gen.generateMessages()
	gen.reconcileThreads()
	gen.generateNotifications()
	gen.generateReports()
	gen.generateUserSettings()
	gen.generateBanners()
	gen.generateSearchTerms()

	return gen.snap, nil
}

// daysAgo returns the anchor time shifted back by the given number of days.
func (gen *generator) daysAgo(days int) time.Time {
	return gen.now.AddDate(0, 0, -days)
}

func (gen *generator) randomDaysAgo(min, max int) time.Time {
	return gen.daysAgo(gen.g.intBetween(min, max))
}

func (gen *generator) makeImageURLs(count int) []string {
	urls := make([]string, 0, count)
	for i := 0; i < count; i++ {
		urls = append(urls, fmt.Sprintf("https://picsum.photos/seed/%d/640/480", gen.g.intBetween(1, 1000)))
	}
	return urls
}

// assignFavorites samples, for each user, a random subset of products the
// user does not own, then mirrors the aggregate back onto each product's
// FavoritesCount and LikeCount.
func (gen *generator) assignFavorites() {
	productIdx := make(map[models.ID]int, len(gen.snap.Products))
	for i, p := range gen.snap.Products {
		productIdx[p.ID] = i
	}

	for ui := range gen.snap.Users {
		user := &gen.snap.Users[ui]

		candidates := make([]models.ID, 0, len(gen.snap.Products))
		for _, p := range gen.snap.Products {
			if p.OwnerID != user.ID {
				candidates = append(candidates, p.ID)
			}
		}

		count := gen.g.intBetween(0, 60)
		favorites := sample(gen.g, candidates, count)
		if favorites == nil {
			favorites = []models.ID{}
		}
		user.FavoritesProductIDs = favorites
		for _, id := range favorites {
			gen.snap.Products[productIdx[id]].FavoritesCount++
		}
	}

	for i := range gen.snap.Products {
		gen.snap.Products[i].LikeCount = gen.snap.Products[i].FavoritesCount
	}
}

// reconcileThreads derives each thread's last-message fields and unread
// count from its message set. Threads without messages keep their
// generation-time placeholders.
func (gen *generator) reconcileThreads() {
	byThread := make(map[models.ID][]models.ChatMessage)
	for _, m := range gen.snap.Messages {
		byThread[m.ThreadID] = append(byThread[m.ThreadID], m)
	}

	for ti := range gen.snap.Threads {
		thread := &gen.snap.Threads[ti]
		list := byThread[thread.ID]
		if len(list) == 0 {
			continue
		}
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Time.Before(list[j].Time)
		})

		last := list[len(list)-1]
		thread.LastMessageText = last.Text
		thread.LastMessageTime = last.Time

		unread := 0
		for _, m := range list {
			if !m.IsRead {
				unread++
			}
		}
		thread.UnreadCount = unread
	}
}

func (gen *generator) generateSearchTerms() {
	terms := make([]models.SearchTerm, 0, len(recentSearchTermSeed))
	for _, term := range recentSearchTermSeed {
		terms = append(terms, models.SearchTerm{
			Term:  term,
			Count: gen.g.intBetween(5, 140),
		})
	}
	gen.snap.RecentSearchTerms = terms
}
