package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/takasapp/takas-admin-api/internal/dto"
	"github.com/takasapp/takas-admin-api/internal/models"
	"github.com/takasapp/takas-admin-api/internal/store"
	"github.com/takasapp/takas-admin-api/internal/utils"
)

// OfferHandler serves swap offers and the forced status transitions.
type OfferHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewOfferHandler constructs an offer handler.
func NewOfferHandler(st *store.Store, logger zerolog.Logger) *OfferHandler {
	return &OfferHandler{
		store:  st,
		logger: logger.With().Str("component", "offer_handler").Logger(),
	}
}

// Register wires offer routes.
func (h *OfferHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Post("/:id/accept", h.accept)
	router.Post("/:id/reject", h.reject)
	router.Post("/:id/cancel", h.cancel)
}

func (h *OfferHandler) list(c *fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid limit")
	}
	offset, err := parseQueryInt(c, "offset")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid offset")
	}

	snap := h.store.Snapshot()
	page := paginate(snap.Offers, limit, offset)

	return utils.SendSuccess(c, "offers", fiber.Map{
		"items": page,
		"meta":  dto.ListMeta{Total: len(snap.Offers), Limit: limit, Offset: offset},
	})
}

func (h *OfferHandler) accept(c *fiber.Ctx) error {
	id := models.ID(c.Params("id"))
	if !h.store.ForceAcceptOffer(c.UserContext(), id) {
		return utils.SendError(c, fiber.StatusNotFound, "offer not found")
	}
	return utils.SendSuccess(c, "offer accepted", nil)
}

func (h *OfferHandler) reject(c *fiber.Ctx) error {
	id := models.ID(c.Params("id"))
	if !h.store.ForceRejectOffer(c.UserContext(), id) {
		return utils.SendError(c, fiber.StatusNotFound, "offer not found")
	}
	return utils.SendSuccess(c, "offer rejected", nil)
}

func (h *OfferHandler) cancel(c *fiber.Ctx) error {
	id := models.ID(c.Params("id"))
	if !h.store.ForceCancelOffer(c.UserContext(), id) {
		return utils.SendError(c, fiber.StatusNotFound, "offer not found")
	}
	return utils.SendSuccess(c, "offer cancelled", nil)
}
