package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/takasapp/takas-admin-api/internal/handler"
	"github.com/takasapp/takas-admin-api/internal/models"
	"github.com/takasapp/takas-admin-api/internal/store"
)

func newBannerApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	st := newHandlerStore(t)
	app := fiber.New()
	handler.NewBannerHandler(st, newValidator(), zerolog.New(io.Discard)).Register(app.Group("/api/admin/banners"))
	return app, st
}

func TestBannerHandler_ListSortedByPriority(t *testing.T) {
	app, _ := newBannerApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/banners", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Items []models.Banner `json:"items"`
		} `json:"data"`
	}
	decodeResponse(t, resp, &body)

	require.True(t, body.Success)
	require.NotEmpty(t, body.Data.Items)
	for i := 1; i < len(body.Data.Items); i++ {
		require.LessOrEqual(t, body.Data.Items[i-1].Priority, body.Data.Items[i].Priority)
	}
}

func TestBannerHandler_CreateSanitizesMarkup(t *testing.T) {
	app, st := newBannerApp(t)

	payload := `{
		"id": "b_promo",
		"title": "<script>alert(1)</script>Bahar Kampanyasi",
		"description": "<b>Takas</b> zamani",
		"imageUrl": "https://picsum.photos/seed/1/1200/400",
		"startDate": "2026-01-15T00:00:00Z",
		"endDate": "2026-02-15T00:00:00Z",
		"isActive": true,
		"priority": 5
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/admin/banners", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Banner
	for _, b := range st.Snapshot().Banners {
		if b.ID == "b_promo" {
			created = b
		}
	}
	require.Equal(t, models.ID("b_promo"), created.ID)
	require.Equal(t, "Bahar Kampanyasi", created.Title)
	require.Equal(t, "Takas zamani", created.Description)
}

func TestBannerHandler_CreateRejectsInvalidPayload(t *testing.T) {
	app, _ := newBannerApp(t)

	// End date before start date.
	payload := `{
		"id": "b_bad",
		"title": "Ters tarih",
		"imageUrl": "https://picsum.photos/seed/2/1200/400",
		"startDate": "2026-02-15T00:00:00Z",
		"endDate": "2026-01-15T00:00:00Z"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/admin/banners", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestBannerHandler_CreateRejectsDuplicateID(t *testing.T) {
	app, st := newBannerApp(t)

	existing := st.Snapshot().Banners[0]
	payload := `{
		"id": "` + existing.ID.String() + `",
		"title": "Kopya",
		"imageUrl": "https://picsum.photos/seed/3/1200/400",
		"startDate": "2026-01-15T00:00:00Z",
		"endDate": "2026-02-15T00:00:00Z"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/admin/banners", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestBannerHandler_UpdateMergesFields(t *testing.T) {
	app, st := newBannerApp(t)

	existing := st.Snapshot().Banners[0]
	payload := `{"title": "Yeni Baslik", "isActive": false}`

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/banners/"+existing.ID.String(), strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Banner
	for _, b := range st.Snapshot().Banners {
		if b.ID == existing.ID {
			updated = b
		}
	}
	require.Equal(t, "Yeni Baslik", updated.Title)
	require.False(t, updated.IsActive)
	require.Equal(t, existing.ImageURL, updated.ImageURL)
}

func TestBannerHandler_DeleteUnknownReturns404(t *testing.T) {
	app, _ := newBannerApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/banners/missing", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
