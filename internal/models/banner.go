package models

import "time"

// Banner is a promotional banner shown in the mobile app. The only entity
// kind with full CRUD support, including deletion.
type Banner struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	TargetURL   string    `json:"targetUrl,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	IsActive    bool      `json:"isActive"`
	Priority    int       `json:"priority"`
}
