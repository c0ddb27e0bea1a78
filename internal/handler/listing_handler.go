package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/takasapp/takas-admin-api/internal/dto"
	"github.com/takasapp/takas-admin-api/internal/kpi"
	"github.com/takasapp/takas-admin-api/internal/models"
	"github.com/takasapp/takas-admin-api/internal/store"
	"github.com/takasapp/takas-admin-api/internal/utils"
)

// ListingHandler serves product listings and their moderation actions.
type ListingHandler struct {
	store    *store.Store
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewListingHandler constructs a listing handler.
func NewListingHandler(st *store.Store, validate *validator.Validate, logger zerolog.Logger) *ListingHandler {
	return &ListingHandler{
		store:    st,
		validate: validate,
		logger:   logger.With().Str("component", "listing_handler").Logger(),
	}
}

// Register wires listing routes.
func (h *ListingHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Patch("/:id/premium", h.togglePremium)
	router.Patch("/:id/exchanged", h.markExchanged)
	router.Patch("/:id/hidden", h.toggleHidden)
}

func (h *ListingHandler) list(c *fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid limit")
	}
	offset, err := parseQueryInt(c, "offset")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid offset")
	}

	statusFilter := c.Query("status")
	switch statusFilter {
	case "", string(kpi.ListingActive), string(kpi.ListingDraft), string(kpi.ListingExchanged):
	default:
		return utils.SendError(c, fiber.StatusBadRequest, "invalid status filter")
	}

	snap := h.store.Snapshot()
	products := snap.Products
	if statusFilter != "" {
		filtered := make([]models.Product, 0, len(products))
		for _, p := range products {
			if string(kpi.ListingStatusOf(p)) == statusFilter {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	page := paginate(products, limit, offset)

	return utils.SendSuccess(c, "listings", fiber.Map{
		"items": page,
		"meta":  dto.ListMeta{Total: len(products), Limit: limit, Offset: offset},
	})
}

func (h *ListingHandler) togglePremium(c *fiber.Ctx) error {
	id := models.ID(c.Params("id"))

	var payload dto.PremiumToggleRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
		}
		if err := h.validate.Struct(payload); err != nil {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid premium type")
		}
	}

	var premiumType *models.PremiumType
	if payload.PremiumType != nil {
		pt := models.PremiumType(*payload.PremiumType)
		premiumType = &pt
	}

	if !h.store.ToggleProductPremium(c.UserContext(), id, premiumType) {
		return utils.SendError(c, fiber.StatusNotFound, "listing not found")
	}
	return utils.SendSuccess(c, "listing premium updated", nil)
}

func (h *ListingHandler) markExchanged(c *fiber.Ctx) error {
	id := models.ID(c.Params("id"))

	var payload dto.ExchangedRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if !h.store.MarkProductExchanged(c.UserContext(), id, payload.Exchanged) {
		return utils.SendError(c, fiber.StatusNotFound, "listing not found")
	}
	return utils.SendSuccess(c, "listing exchange flag updated", nil)
}

func (h *ListingHandler) toggleHidden(c *fiber.Ctx) error {
	id := models.ID(c.Params("id"))
	if !h.store.ToggleProductHidden(c.UserContext(), id) {
		return utils.SendError(c, fiber.StatusNotFound, "listing not found")
	}
	return utils.SendSuccess(c, "listing visibility toggled", nil)
}
