package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/takasapp/takas-admin-api/internal/handler"
	"github.com/takasapp/takas-admin-api/internal/kpi"
	"github.com/takasapp/takas-admin-api/internal/models"
	"github.com/takasapp/takas-admin-api/internal/store"
)

func newDashboardApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	st := newHandlerStore(t)
	app := fiber.New()
	handler.NewDashboardHandler(st, zerolog.New(io.Discard)).Register(app.Group("/api/admin/dashboard"))
	return app, st
}

func TestDashboardHandler_Kpis(t *testing.T) {
	app, st := newDashboardApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard/kpis", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool        `json:"success"`
		Data    kpi.Summary `json:"data"`
	}
	decodeResponse(t, resp, &body)

	require.True(t, body.Success)

	snap := st.Snapshot()
	total := body.Data.ActiveListings + body.Data.DraftListings + body.Data.ExchangedListings
	require.Equal(t, len(snap.Products), total)
}

func TestDashboardHandler_SearchTerms(t *testing.T) {
	app, st := newDashboardApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard/search-terms", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []models.SearchTerm `json:"data"`
	}
	decodeResponse(t, resp, &body)

	require.Len(t, body.Data, len(st.Snapshot().RecentSearchTerms))
}

func TestDashboardHandler_RegenerateResetsMutations(t *testing.T) {
	app, st := newDashboardApp(t)

	original := st.Snapshot()
	require.True(t, st.BanUser(context.Background(), original.Users[0].ID))

	req := httptest.NewRequest(http.MethodPost, "/api/admin/dashboard/regenerate", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Seed     int64 `json:"seed"`
			Users    int   `json:"users"`
			Products int   `json:"products"`
		} `json:"data"`
	}
	decodeResponse(t, resp, &body)

	require.True(t, body.Success)
	require.Equal(t, original.Seed, body.Data.Seed)
	require.Equal(t, len(original.Users), body.Data.Users)
	require.Equal(t, len(original.Products), body.Data.Products)

	restored, ok := st.Snapshot().UserByID(original.Users[0].ID)
	require.True(t, ok)
	require.Equal(t, original.Users[0].Role, restored.Role)
}
