package models

import "time"

// Category is a fixed taxonomy entry for product listings.
type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

// Condition describes the physical state of a listed product.
type Condition string

const (
	ConditionNew          Condition = "new"
	ConditionSlightlyUsed Condition = "slightly-used"
	ConditionUsed         Condition = "used"
)

// ListingStatusDraft is the status value a draft listing carries instead of
// its condition.
const ListingStatusDraft = "draft"

// PremiumType enumerates the paid placement tiers for a listing.
type PremiumType string

const (
	PremiumNone     PremiumType = "none"
	PremiumFeatured PremiumType = "featured"
	PremiumVitrin   PremiumType = "vitrin"
)

// ProductOwner is the denormalized owner summary embedded in a listing.
type ProductOwner struct {
	ID       ID      `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Phone    string  `json:"phone"`
	Avatar   string  `json:"avatar"`
	Rating   float64 `json:"rating"`
}

// Product is a swap listing. Premium, PremiumType and PremiumExpiryDate move
// together: Premium == (PremiumType != PremiumNone), and the expiry date is
// non-nil exactly when Premium is true.
type Product struct {
	ID      ID `json:"id"`
	OwnerID ID `json:"ownerId"`

	Name        string `json:"name"`
	Description string `json:"description"`
	Price       *int   `json:"price"`
	Currency    string `json:"currency"`

	CategoryID   int      `json:"categoryId"`
	CategoryName string   `json:"categoryName"`
	HashTags     []string `json:"hashTags"`
	Tags         []string `json:"tags"`

	Condition     Condition `json:"condition"`
	Status        string    `json:"status"`
	IsExchanged   bool      `json:"isExchanged"`
	ChangeProduct []string  `json:"changeProduct"`

	ImageURL string   `json:"imageUrl"`
	Images   []string `json:"images"`

	Location string `json:"location"`

	Premium           bool        `json:"premium"`
	IsAd              bool        `json:"isAd"`
	PremiumType       PremiumType `json:"premiumType"`
	PremiumExpiryDate *time.Time  `json:"premiumExpiryDate"`

	ViewCount      int       `json:"viewCount"`
	LikeCount      int       `json:"likeCount"`
	FavoritesCount int       `json:"favoritesCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	Owner ProductOwner `json:"owner"`

	// Moderation flag, admin-only.
	Hidden bool `json:"hidden"`
}
