package kpi_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/takasapp/takas-admin-api/internal/kpi"
	"github.com/takasapp/takas-admin-api/internal/models"
)

func TestListingStatusOfIsTotal(t *testing.T) {
	cases := []struct {
		name    string
		product models.Product
		want    kpi.ListingStatus
	}{
		{"active", models.Product{Status: string(models.ConditionUsed)}, kpi.ListingActive},
		{"draft", models.Product{Status: models.ListingStatusDraft}, kpi.ListingDraft},
		{"exchanged", models.Product{Status: string(models.ConditionNew), IsExchanged: true}, kpi.ListingExchanged},
		{"draft wins over exchanged", models.Product{Status: models.ListingStatusDraft, IsExchanged: true}, kpi.ListingDraft},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, kpi.ListingStatusOf(tc.product))
		})
	}
}

func TestComputeCountsEveryKPI(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	products := []models.Product{
		{Status: string(models.ConditionNew)},
		{Status: string(models.ConditionUsed), Premium: true},
		{Status: models.ListingStatusDraft},
		{Status: string(models.ConditionNew), IsExchanged: true},
	}
	offers := []models.SwapOffer{
		{Status: models.OfferPending},
		{Status: models.OfferPending},
		{Status: models.OfferAccepted},
	}
	notifications := []models.NotificationItem{
		{IsRead: true},
		{IsRead: false},
		{IsRead: false},
	}
	threads := []models.ChatThread{
		{LastMessageTime: now.Add(-time.Hour)},
		{LastMessageTime: now.AddDate(0, 0, -7)},
		{LastMessageTime: now.AddDate(0, 0, -8)},
	}

	summary := kpi.Compute(products, offers, threads, notifications, now)

	require.Equal(t, 2, summary.ActiveListings)
	require.Equal(t, 1, summary.DraftListings)
	require.Equal(t, 1, summary.ExchangedListings)
	require.Equal(t, 1, summary.PremiumListings)
	require.Equal(t, 2, summary.PendingOffers)
	require.Equal(t, 2, summary.UnreadNotifications)
	require.Equal(t, 2, summary.ActiveChats)
}

func TestComputeHandlesEmptyCollections(t *testing.T) {
	summary := kpi.Compute(nil, nil, nil, nil, time.Now().UTC())
	require.Equal(t, kpi.Summary{}, summary)
}
