// Package kpi provides pure aggregation functions over dataset snapshots.
// Nothing here reads ambient state: every result is a function of its
// arguments alone.
package kpi

import (
	"time"

	"github.com/takasapp/takas-admin-api/internal/models"
)

// ListingStatus classifies a product for the listings overview.
type ListingStatus string

const (
	ListingActive    ListingStatus = "active"
	ListingDraft     ListingStatus = "draft"
	ListingExchanged ListingStatus = "exchanged"
)

// activeChatWindow is how recent a thread's last message must be for the
// thread to count as an active chat.
const activeChatWindow = 7 * 24 * time.Hour

// ListingStatusOf maps every product to exactly one listing status: draft
// wins over exchanged, exchanged wins over active.
func ListingStatusOf(p models.Product) ListingStatus {
	switch {
	case p.Status == models.ListingStatusDraft:
		return ListingDraft
	case p.IsExchanged:
		return ListingExchanged
	default:
		return ListingActive
	}
}

// Summary is the dashboard KPI roll-up.
type Summary struct {
	ActiveListings      int `json:"activeListings"`
	DraftListings       int `json:"draftListings"`
	ExchangedListings   int `json:"exchangedListings"`
	PremiumListings     int `json:"premiumListings"`
	PendingOffers       int `json:"pendingOffers"`
	UnreadNotifications int `json:"unreadNotifications"`
	ActiveChats         int `json:"activeChats"`
}

// Compute counts the dashboard KPIs over the given collections. A thread is
// an active chat when its last message is within seven days of now.
func Compute(products []models.Product, offers []models.SwapOffer, threads []models.ChatThread, notifications []models.NotificationItem, now time.Time) Summary {
	var s Summary

	for _, p := range products {
		switch ListingStatusOf(p) {
		case ListingDraft:
			s.DraftListings++
		case ListingExchanged:
			s.ExchangedListings++
		default:
			s.ActiveListings++
		}
		if p.Premium {
			s.PremiumListings++
		}
	}

	for _, o := range offers {
		if o.Status == models.OfferPending {
			s.PendingOffers++
		}
	}

	for _, n := range notifications {
		if !n.IsRead {
			s.UnreadNotifications++
		}
	}

	for _, t := range threads {
		if now.Sub(t.LastMessageTime) <= activeChatWindow {
			s.ActiveChats++
		}
	}

	return s
}
