package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/takasapp/takas-admin-api/internal/dto"
	"github.com/takasapp/takas-admin-api/internal/models"
	"github.com/takasapp/takas-admin-api/internal/store"
	"github.com/takasapp/takas-admin-api/internal/utils"
)

// UserHandler serves user listing, detail and moderation actions.
type UserHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewUserHandler constructs a user handler.
func NewUserHandler(st *store.Store, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		store:  st,
		logger: logger.With().Str("component", "user_handler").Logger(),
	}
}

// Register wires user routes.
func (h *UserHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Get("/:id", h.detail)
	router.Patch("/:id/verified", h.toggleVerified)
	router.Post("/:id/ban", h.ban)
	router.Post("/:id/unban", h.unban)
}

func (h *UserHandler) list(c *fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid limit")
	}
	offset, err := parseQueryInt(c, "offset")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid offset")
	}

	snap := h.store.Snapshot()
	page := paginate(snap.Users, limit, offset)

	return utils.SendSuccess(c, "users", fiber.Map{
		"items": page,
		"meta":  dto.ListMeta{Total: len(snap.Users), Limit: limit, Offset: offset},
	})
}

func (h *UserHandler) detail(c *fiber.Ctx) error {
	id := models.ID(c.Params("id"))
	snap := h.store.Snapshot()

	user, ok := snap.UserByID(id)
	if !ok {
		return utils.SendError(c, fiber.StatusNotFound, "user not found")
	}

	response := dto.UserDetailResponse{
		User:     user,
		Products: snap.ProductsByOwner(id),
		Offers:   snap.OffersByUser(id),
		Reports:  snap.ReportsByUser(id),
	}
	if settings, ok := snap.NotificationSettingsByUserID[id]; ok {
		response.NotificationSettings = &settings
	}
	if settings, ok := snap.LocationSettingsByUserID[id]; ok {
		response.LocationSettings = &settings
	}
	if trust, ok := snap.TrustScoresByUserID[id]; ok {
		response.TrustScore = &trust
	}

	return utils.SendSuccess(c, "user detail", response)
}

func (h *UserHandler) toggleVerified(c *fiber.Ctx) error {
	id := models.ID(c.Params("id"))
	if !h.store.ToggleUserVerified(c.UserContext(), id) {
		return utils.SendError(c, fiber.StatusNotFound, "user not found")
	}
	return utils.SendSuccess(c, "user verification toggled", nil)
}

func (h *UserHandler) ban(c *fiber.Ctx) error {
	id := models.ID(c.Params("id"))
	if !h.store.BanUser(c.UserContext(), id) {
		return utils.SendError(c, fiber.StatusNotFound, "user not found")
	}
	return utils.SendSuccess(c, "user banned", nil)
}

func (h *UserHandler) unban(c *fiber.Ctx) error {
	id := models.ID(c.Params("id"))
	if !h.store.UnbanUser(c.UserContext(), id) {
		return utils.SendError(c, fiber.StatusNotFound, "user not found")
	}
	return utils.SendSuccess(c, "user unbanned", nil)
}
