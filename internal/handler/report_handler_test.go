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

func newReportApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	st := newHandlerStore(t)
	app := fiber.New()
	handler.NewReportHandler(st, newValidator(), zerolog.New(io.Discard)).Register(app.Group("/api/admin/reports"))
	return app, st
}

func TestReportHandler_ListWithStatusFilter(t *testing.T) {
	app, _ := newReportApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/reports?status=open", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Items []models.ReportItem `json:"items"`
		} `json:"data"`
	}
	decodeResponse(t, resp, &body)

	for _, r := range body.Data.Items {
		require.Equal(t, models.ReportOpen, r.Status)
	}
}

func TestReportHandler_ResolveSetsStatusAndNote(t *testing.T) {
	app, st := newReportApp(t)

	report := st.Snapshot().Reports[0]
	payload := `{"status": "resolved", "note": "duplicate listing removed"}`

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/reports/"+report.ID.String()+"/resolution", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.ReportItem
	for _, r := range st.Snapshot().Reports {
		if r.ID == report.ID {
			updated = r
		}
	}
	require.Equal(t, models.ReportResolved, updated.Status)
	require.Equal(t, "duplicate listing removed", updated.ResolutionNote)
}

func TestReportHandler_ResolveRejectsUnknownStatus(t *testing.T) {
	app, st := newReportApp(t)

	id := st.Snapshot().Reports[0].ID
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/reports/"+id.String()+"/resolution", strings.NewReader(`{"status":"escalated"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestReportHandler_ResolveUnknownIDReturns404(t *testing.T) {
	app, _ := newReportApp(t)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/reports/missing/resolution", strings.NewReader(`{"status":"resolved"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
