package dataset

import "github.com/takasapp/takas-admin-api/internal/models"

var offerStatusWeights = []weightedChoice[models.OfferStatus]{
	{Weight: 55, Value: models.OfferPending},
	{Weight: 18, Value: models.OfferAccepted},
	{Weight: 15, Value: models.OfferRejected},
	{Weight: 10, Value: models.OfferCancelled},
	{Weight: 2, Value: models.OfferCompleted},
}

// offerPair records an accepted or completed offer so thread generation can
// guarantee every concluded swap has a conversation.
type offerPair struct {
	InitiatorID  models.ID
	TargetUserID models.ID
	ProductID    models.ID
}

// generateOffers draws offers until the target count is reached. A draw
// whose initiator owns no products, or whose product pair would share an
// owner, is discarded and retried; an invalid offer never enters the
// snapshot.
func (gen *generator) generateOffers() []offerPair {
	offers := make([]models.SwapOffer, 0, gen.opts.Offers)
	var pairs []offerPair

	if len(gen.snap.Users) < 2 || len(gen.snap.Products) == 0 {
		gen.snap.Offers = offers
		return nil
	}

	// Retries are expected; the budget only breaks degenerate datasets
	// where no valid pair exists (e.g. a single owner holds every product).
	attempts := 0
	maxAttempts := gen.opts.Offers*50 + 100

	for len(offers) < gen.opts.Offers && attempts < maxAttempts {
		attempts++
		targetProduct := pickOne(gen.g, gen.snap.Products)
		targetUserID := targetProduct.OwnerID

		initiator := gen.pickUserExcept(targetUserID)
		initiatorProducts := gen.snap.ProductsByOwner(initiator.ID)
		if len(initiatorProducts) == 0 {
			continue
		}

		offeredProduct := pickOne(gen.g, initiatorProducts)
		if offeredProduct.OwnerID == targetUserID {
			continue
		}

		status := weightedPick(gen.g, offerStatusWeights)
		createdAt := gen.randomDaysAgo(0, 30)

		targetOnline := false
		if target, ok := gen.snap.UserByID(targetUserID); ok {
			targetOnline = target.OnlineStatus
		}

		offers = append(offers, models.SwapOffer{
			ID:               models.NumericID(9000 + len(offers) + 1),
			InitiatorID:      initiator.ID,
			TargetUserID:     targetUserID,
			TargetProductID:  targetProduct.ID,
			OfferedProductID: offeredProduct.ID,
			Status:           status,
			Message:          pickOne(gen.g, turkishSentences),
			CreatedAt:        createdAt,
			UpdatedAt:        createdAt,
			InitiatorOnline:  initiator.OnlineStatus,
			TargetOnline:     targetOnline,
		})

		if status == models.OfferAccepted || status == models.OfferCompleted {
			pairs = append(pairs, offerPair{
				InitiatorID:  initiator.ID,
				TargetUserID: targetUserID,
				ProductID:    targetProduct.ID,
			})
		}
	}

	gen.snap.Offers = offers
	return pairs
}

func (gen *generator) pickUserExcept(exclude models.ID) models.User {
	candidates := make([]models.User, 0, len(gen.snap.Users))
	for _, u := range gen.snap.Users {
		if u.ID != exclude {
			candidates = append(candidates, u)
		}
	}
	return pickOne(gen.g, candidates)
}
