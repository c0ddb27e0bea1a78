package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/takasapp/takas-admin-api/internal/dto"
	"github.com/takasapp/takas-admin-api/internal/handler"
	"github.com/takasapp/takas-admin-api/internal/models"
	"github.com/takasapp/takas-admin-api/internal/store"
)

func newUserApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	st := newHandlerStore(t)
	app := fiber.New()
	handler.NewUserHandler(st, zerolog.New(io.Discard)).Register(app.Group("/api/admin/users"))
	return app, st
}

func TestUserHandler_DetailAggregatesUserData(t *testing.T) {
	app, st := newUserApp(t)

	user := st.Snapshot().Users[0]
	req := httptest.NewRequest(http.MethodGet, "/api/admin/users/"+user.ID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool                   `json:"success"`
		Data    dto.UserDetailResponse `json:"data"`
	}
	decodeResponse(t, resp, &body)

	require.True(t, body.Success)
	require.Equal(t, user.ID, body.Data.User.ID)
	require.NotNil(t, body.Data.NotificationSettings)
	require.NotNil(t, body.Data.LocationSettings)
	require.NotNil(t, body.Data.TrustScore)
	require.Len(t, body.Data.TrustScore.Factors, 5)
}

func TestUserHandler_DetailUnknownReturns404(t *testing.T) {
	app, _ := newUserApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users/missing", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUserHandler_BanDemotesAndUnbanRestoresOnline(t *testing.T) {
	app, st := newUserApp(t)

	user := st.Snapshot().Users[0]
	require.Equal(t, models.RoleAdmin, user.Role)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/users/"+user.ID.String()+"/ban", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	banned, ok := st.Snapshot().UserByID(user.ID)
	require.True(t, ok)
	require.Equal(t, models.RoleUser, banned.Role)
	require.False(t, banned.OnlineStatus)

	req = httptest.NewRequest(http.MethodPost, "/api/admin/users/"+user.ID.String()+"/unban", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	unbanned, ok := st.Snapshot().UserByID(user.ID)
	require.True(t, ok)
	require.True(t, unbanned.OnlineStatus)
}

func TestUserHandler_ToggleVerified(t *testing.T) {
	app, st := newUserApp(t)

	user := st.Snapshot().Users[1]
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/users/"+user.ID.String()+"/verified", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	updated, ok := st.Snapshot().UserByID(user.ID)
	require.True(t, ok)
	require.Equal(t, !user.Verified, updated.Verified)
}
