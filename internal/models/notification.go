package models

import "time"

// NotificationType drives the fixed title lookup for a notification.
type NotificationType string

const (
	NotificationSwapOffer       NotificationType = "swap_offer"
	NotificationSwapAccepted    NotificationType = "swap_accepted"
	NotificationSwapRejected    NotificationType = "swap_rejected"
	NotificationProductViewed   NotificationType = "product_viewed"
	NotificationNewMessage      NotificationType = "new_message"
	NotificationFavoriteUpdated NotificationType = "favorite_updated"
)

// NotificationItem is an in-app notification addressed to a user,
// optionally referencing a product.
type NotificationItem struct {
	ID           ID               `json:"id"`
	Type         NotificationType `json:"type"`
	Title        string           `json:"title"`
	Message      string           `json:"message"`
	Time         time.Time        `json:"time"`
	IsRead       bool             `json:"isRead"`
	UserID       ID               `json:"userId"`
	UserPhoto    string           `json:"userPhoto,omitempty"`
	ProductID    ID               `json:"productId,omitempty"`
	ProductPhoto string           `json:"productPhoto,omitempty"`
}

// NotificationSettings holds a user's notification channel preferences.
type NotificationSettings struct {
	PushEnabled   bool `json:"pushEnabled"`
	SwapOffers    bool `json:"swapOffers"`
	SwapAccepted  bool `json:"swapAccepted"`
	SwapRejected  bool `json:"swapRejected"`
	NewMessages   bool `json:"newMessages"`
	ProductViewed bool `json:"productViewed"`
	NewFollowers  bool `json:"newFollowers"`

	EmailEnabled      bool `json:"emailEnabled"`
	EmailSwapUpdates  bool `json:"emailSwapUpdates"`
	EmailWeeklyDigest bool `json:"emailWeeklyDigest"`
	EmailPromotions   bool `json:"emailPromotions"`

	QuietHoursEnabled bool   `json:"quietHoursEnabled"`
	QuietHoursStart   string `json:"quietHoursStart"`
	QuietHoursEnd     string `json:"quietHoursEnd"`
}
