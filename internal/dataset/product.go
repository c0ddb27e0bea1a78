package dataset

import (
	"strings"
	"time"

	"github.com/takasapp/takas-admin-api/internal/models"
)

var premiumTypeWeights = []weightedChoice[models.PremiumType]{
	{Weight: 55, Value: models.PremiumFeatured},
	{Weight: 45, Value: models.PremiumVitrin},
}

var conditions = []models.Condition{
	models.ConditionNew,
	models.ConditionSlightlyUsed,
	models.ConditionUsed,
}

func (gen *generator) generateProducts() {
	products := make([]models.Product, 0, gen.opts.Products)
	if len(gen.snap.Users) == 0 {
		gen.snap.Products = products
		return
	}
	for idx := 0; idx < gen.opts.Products; idx++ {
		products = append(products, gen.makeProduct(idx))
	}

	// Normalize hashtags into the #-prefixed tags view.
	for i := range products {
		tags := make([]string, 0, len(products[i].HashTags))
		for _, t := range products[i].HashTags {
			if !strings.HasPrefix(t, "#") {
				t = "#" + t
			}
			tags = append(tags, t)
		}
		products[i].Tags = tags
	}

	gen.snap.Products = products
}

func (gen *generator) makeProduct(idx int) models.Product {
	owner := pickOne(gen.g, gen.snap.Users)
	category := pickOne(gen.g, gen.snap.Categories)
	images := gen.makeImageURLs(gen.g.intBetween(1, 6))

	premium := gen.g.chance(0.08)
	premiumType := models.PremiumNone
	if premium {
		premiumType = weightedPick(gen.g, premiumTypeWeights)
	}

	isExchanged := gen.g.chance(0.15)
	isDraft := gen.g.chance(0.10)
	condition := pickOne(gen.g, conditions)

	status := string(condition)
	if isDraft {
		status = models.ListingStatusDraft
	}

	var price *int
	if !gen.g.chance(0.35) {
		v := gen.g.intBetween(200, 60000)
		price = &v
	}

	var expiry *time.Time
	if premium {
		days := 14
		if premiumType == models.PremiumVitrin {
			days = 7
		}
		e := gen.now.AddDate(0, 0, days)
		expiry = &e
	}

	return models.Product{
		ID:      models.NumericID(idx + 1000),
		OwnerID: owner.ID,

		Name:        pickOne(gen.g, productTitlesByCategory[category.Name]),
		Description: pickOne(gen.g, turkishDescriptions),
		Price:       price,
		Currency:    "TL",

		CategoryID:   category.ID,
		CategoryName: category.Name,
		HashTags:     sample(gen.g, hashtagPool, gen.g.intBetween(1, 4)),

		Condition:     condition,
		Status:        status,
		IsExchanged:   isExchanged,
		ChangeProduct: sample(gen.g, changeProductPool, gen.g.intBetween(0, 3)),

		ImageURL: images[0],
		Images:   images,

		Location: owner.Location,

		Premium:           premium,
		IsAd:              premium,
		PremiumType:       premiumType,
		PremiumExpiryDate: expiry,

		ViewCount: gen.g.intBetween(0, 6500),
		CreatedAt: gen.randomDaysAgo(0, 60),
		UpdatedAt: gen.randomDaysAgo(0, 15),

		Owner: models.ProductOwner{
			ID:       owner.ID,
			Name:     owner.FullName,
			Username: owner.Username,
			Phone:    owner.Phone,
			Avatar:   owner.Avatar,
			Rating:   owner.Rating,
		},

		Hidden: gen.g.chance(0.03),
	}
}
