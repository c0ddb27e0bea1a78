package handler

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/takasapp/takas-admin-api/internal/kpi"
	"github.com/takasapp/takas-admin-api/internal/store"
	"github.com/takasapp/takas-admin-api/internal/utils"
)

// DashboardHandler serves the KPI roll-up, dataset regeneration, and the
// live KPI stream.
type DashboardHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewDashboardHandler constructs a dashboard handler.
func NewDashboardHandler(st *store.Store, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		store:  st,
		logger: logger.With().Str("component", "dashboard_handler").Logger(),
	}
}

// Register wires dashboard routes.
func (h *DashboardHandler) Register(router fiber.Router) {
	router.Get("/kpis", h.kpis)
	router.Get("/search-terms", h.searchTerms)
	router.Post("/regenerate", h.regenerate)
	router.Get("/stream", h.stream)
}

func (h *DashboardHandler) kpis(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	summary := kpi.Compute(snap.Products, snap.Offers, snap.Threads, snap.Notifications, time.Now().UTC())
	return utils.SendSuccess(c, "dashboard kpis", summary)
}

func (h *DashboardHandler) searchTerms(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	return utils.SendSuccess(c, "recent search terms", snap.RecentSearchTerms)
}

func (h *DashboardHandler) regenerate(c *fiber.Ctx) error {
	snap, err := h.store.Regenerate(c.UserContext())
	if err != nil {
		h.logger.Error().Err(err).Msg("regeneration failed")
		return utils.SendError(c, fiber.StatusInternalServerError, "regeneration failed")
	}

	return utils.SendSuccess(c, "dataset regenerated", fiber.Map{
		"seed":        snap.Seed,
		"generatedAt": snap.GeneratedAt,
		"users":       len(snap.Users),
		"products":    len(snap.Products),
	})
}

type kpiEvent struct {
	Version uint64      `json:"version"`
	Op      string      `json:"op"`
	Kpis    kpi.Summary `json:"kpis"`
}

// stream pushes a fresh KPI summary over SSE whenever a mutation lands.
func (h *DashboardHandler) stream(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	changes, cancel := h.store.Subscribe()

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()

		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case change, ok := <-changes:
				if !ok {
					return
				}
				if err := h.writeKpiEvent(w, change); err != nil {
					h.logger.Debug().Err(err).Msg("failed to write kpi event")
					return
				}
			case <-ticker.C:
				if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	})

	return nil
}

func (h *DashboardHandler) writeKpiEvent(w *bufio.Writer, change store.Change) error {
	snap := h.store.Snapshot()
	event := kpiEvent{
		Version: change.Version,
		Op:      change.Op,
		Kpis:    kpi.Compute(snap.Products, snap.Offers, snap.Threads, snap.Notifications, time.Now().UTC()),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: kpis\ndata: %s\n\n", payload); err != nil {
		return err
	}
	return w.Flush()
}
