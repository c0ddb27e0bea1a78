package models

// LocationRef identifies a saved city/district pair.
type LocationRef struct {
	ID       int    `json:"id"`
	City     string `json:"city"`
	District string `json:"district"`
}

// LocationHistoryItem is a dated entry in a user's location history.
type LocationHistoryItem struct {
	LocationRef
	Date string `json:"date"`
	Time string `json:"time"`
}

// LocationSettings holds a user's location preferences and history.
type LocationSettings struct {
	LocationPermission bool                  `json:"locationPermission"`
	DefaultLocation    LocationRef           `json:"defaultLocation"`
	NearbyRadiusKm     int                   `json:"nearbyRadiusKm"`
	History            []LocationHistoryItem `json:"history"`
}

// TrustFactorID names one of the five fixed trust factors.
type TrustFactorID string

const (
	TrustCompletedSwaps      TrustFactorID = "completed-swaps"
	TrustRatings             TrustFactorID = "ratings"
	TrustResponseTime        TrustFactorID = "response-time"
	TrustProfileCompleteness TrustFactorID = "profile-completeness"
	TrustVerification        TrustFactorID = "verification"
)

// TrustFactor is a single scored component of a user's trust score.
type TrustFactor struct {
	ID       TrustFactorID `json:"id"`
	Score    float64       `json:"score"`
	MaxScore float64       `json:"maxScore"`
}

// TrustScore aggregates the five trust factors for a user. OverallScore is
// the mean of the factor scores rounded to two decimals.
type TrustScore struct {
	UserID       ID            `json:"userId"`
	OverallScore float64       `json:"overallScore"`
	Factors      []TrustFactor `json:"factors"`
}

// SearchTerm is a ranked recent search entry shown on the dashboard.
type SearchTerm struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}
