package dataset

import (
	"fmt"

	"github.com/takasapp/takas-admin-api/internal/models"
)

// generateBanners seeds the promotional banner set so the banner admin
// page has content before the first create call.
func (gen *generator) generateBanners() {
	banners := make([]models.Banner, 0, len(bannerSeed))
	for i, seed := range bannerSeed {
		start := gen.randomDaysAgo(0, 10)
		banners = append(banners, models.Banner{
			ID:          models.ID(fmt.Sprintf("b_%d", i+1)),
			Title:       seed.Title,
			Description: seed.Description,
			ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%d/1200/400", gen.g.intBetween(1, 1000)),
			TargetURL:   seed.TargetURL,
			StartDate:   start,
			EndDate:     start.AddDate(0, 0, gen.g.intBetween(7, 30)),
			IsActive:    gen.g.chance(0.8),
			Priority:    i,
		})
	}
	gen.snap.Banners = banners
}
