package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/takasapp/takas-admin-api/internal/dto"
	"github.com/takasapp/takas-admin-api/internal/store"
	"github.com/takasapp/takas-admin-api/internal/utils"
)

// NotificationHandler serves the read-only notification feed.
type NotificationHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewNotificationHandler constructs a notification handler.
func NewNotificationHandler(st *store.Store, logger zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{
		store:  st,
		logger: logger.With().Str("component", "notification_handler").Logger(),
	}
}

// Register wires notification routes.
func (h *NotificationHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
}

func (h *NotificationHandler) list(c *fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid limit")
	}
	offset, err := parseQueryInt(c, "offset")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid offset")
	}

	snap := h.store.Snapshot()
	page := paginate(snap.Notifications, limit, offset)

	return utils.SendSuccess(c, "notifications", fiber.Map{
		"items": page,
		"meta":  dto.ListMeta{Total: len(snap.Notifications), Limit: limit, Offset: offset},
	})
}
