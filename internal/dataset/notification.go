package dataset

import (
	"fmt"

	"github.com/takasapp/takas-admin-api/internal/models"
)

// generateNotifications builds notification items. A product_viewed
// notification that references a product also increments that product's
// view count: the dataset treats the notification as evidence of a real
// view event.
func (gen *generator) generateNotifications() {
	if len(gen.snap.Users) == 0 {
		return
	}

	notifications := make([]models.NotificationItem, 0, gen.opts.Notifications)

	for i := 0; i < gen.opts.Notifications; i++ {
		typ := pickOne(gen.g, notificationTypes)
		user := pickOne(gen.g, gen.snap.Users)

		productIdx := -1
		if len(gen.snap.Products) > 0 && gen.g.chance(0.55) {
			productIdx = gen.g.intBetween(0, len(gen.snap.Products)-1)
		}

		item := models.NotificationItem{
			ID:        models.ID(fmt.Sprintf("n_%d", i+1)),
			Type:      typ,
			Title:     notificationTitles[typ],
			Message:   pickOne(gen.g, turkishSentences),
			Time:      gen.randomDaysAgo(0, 10),
			IsRead:    gen.g.chance(0.6),
			UserID:    user.ID,
			UserPhoto: user.Avatar,
		}

		if productIdx >= 0 {
			product := &gen.snap.Products[productIdx]
			if typ == models.NotificationProductViewed {
				product.ViewCount++
			}
			item.ProductID = product.ID
			item.ProductPhoto = product.ImageURL
		}

		notifications = append(notifications, item)
	}

	gen.snap.Notifications = notifications
}
