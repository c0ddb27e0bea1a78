package dto

import "github.com/takasapp/takas-admin-api/internal/models"

// ListMeta carries pagination counters for collection responses.
type ListMeta struct {
	Total  int `json:"total"`
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// PremiumToggleRequest optionally pins the premium tier; without it the
// store flips and alternates.
type PremiumToggleRequest struct {
	PremiumType *string `json:"premiumType" validate:"omitempty,oneof=none featured vitrin"`
}

// ExchangedRequest sets a listing's exchanged flag.
type ExchangedRequest struct {
	Exchanged bool `json:"exchanged"`
}

// ReportResolutionRequest closes out a report with a status and note.
type ReportResolutionRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_review resolved rejected"`
	Note   string `json:"note" validate:"max=500"`
}

// UserDetailResponse aggregates everything the user detail page shows.
type UserDetailResponse struct {
	User                 models.User                  `json:"user"`
	Products             []models.Product             `json:"products"`
	Offers               []models.SwapOffer           `json:"offers"`
	Reports              []models.ReportItem          `json:"reports"`
	NotificationSettings *models.NotificationSettings `json:"notificationSettings,omitempty"`
	LocationSettings     *models.LocationSettings     `json:"locationSettings,omitempty"`
	TrustScore           *models.TrustScore           `json:"trustScore,omitempty"`
}
