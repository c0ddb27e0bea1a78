package dataset

import (
	"fmt"

	"github.com/takasapp/takas-admin-api/internal/models"
)

// threadKey uniquely identifies a thread by its unordered participant pair
// plus the optional product context, so the same conversation is never
// materialized twice.
func threadKey(a, b, productID models.ID) string {
	if b < a {
		a, b = b, a
	}
	product := "none"
	if !productID.IsZero() {
		product = productID.String()
	}
	return a.String() + "-" + b.String() + ":" + product
}

// generateThreads materializes one thread per accepted/completed offer
// first, then pads with random participant pairs until the target count is
// reached. Duplicate keys are skipped.
func (gen *generator) generateThreads(pairs []offerPair) {
	threads := make([]models.ChatThread, 0, gen.opts.Threads)
	seen := make(map[string]struct{})

	for _, pair := range pairs {
		key := threadKey(pair.InitiatorID, pair.TargetUserID, pair.ProductID)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		other, _ := gen.snap.UserByID(pair.TargetUserID)
		product, _ := gen.snap.ProductByID(pair.ProductID)

		threads = append(threads, gen.makeThread(len(threads), pair.InitiatorID, other, product, 7, 12))
	}

	attempts := 0
	maxAttempts := gen.opts.Threads*50 + 100

	for len(threads) < gen.opts.Threads && len(gen.snap.Users) >= 2 && attempts < maxAttempts {
		attempts++
		u1 := pickOne(gen.g, gen.snap.Users)
		u2 := gen.pickUserExcept(u1.ID)

		var product models.Product
		if gen.g.chance(0.6) {
			product = pickOne(gen.g, gen.snap.Products)
		}

		key := threadKey(u1.ID, u2.ID, product.ID)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		threads = append(threads, gen.makeThread(len(threads), u1.ID, u2, product, 14, 20))
	}

	gen.snap.Threads = threads
}

// makeThread seeds placeholder last-message fields; the reconciliation pass
// overwrites them for any thread that receives messages.
func (gen *generator) makeThread(index int, initiatorID models.ID, other models.User, product models.Product, maxAgeDays, maxUnread int) models.ChatThread {
	return models.ChatThread{
		ID:   models.ID(fmt.Sprintf("t_%d", index+1)),
		Type: models.ChatIndividual,

		UserIDs:       []models.ID{initiatorID, other.ID},
		OtherUserID:   other.ID,
		OtherName:     other.FullName,
		OtherUsername: other.Username,
		OtherAvatar:   other.Avatar,
		IsOnline:      other.OnlineStatus,

		LastMessageTime: gen.randomDaysAgo(0, maxAgeDays),
		UnreadCount:     gen.g.intBetween(0, maxUnread),

		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductImage: product.ImageURL,
	}
}
