package handler

import (
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/takasapp/takas-admin-api/internal/dto"
	"github.com/takasapp/takas-admin-api/internal/models"
	"github.com/takasapp/takas-admin-api/internal/store"
	"github.com/takasapp/takas-admin-api/internal/utils"
)

// BannerHandler manages promotional banners.
type BannerHandler struct {
	store     *store.Store
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewBannerHandler constructs a banner handler.
func NewBannerHandler(st *store.Store, validate *validator.Validate, logger zerolog.Logger) *BannerHandler {
	return &BannerHandler{
		store:     st,
		validate:  validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "banner_handler").Logger(),
	}
}

// Register wires banner routes.
func (h *BannerHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Post("/", h.create)
	router.Patch("/:id", h.update)
	router.Delete("/:id", h.remove)
}

func (h *BannerHandler) list(c *fiber.Ctx) error {
	snap := h.store.Snapshot()

	banners := make([]models.Banner, len(snap.Banners))
	copy(banners, snap.Banners)
	sort.SliceStable(banners, func(i, j int) bool {
		return banners[i].Priority < banners[j].Priority
	})

	return utils.SendSuccess(c, "banners", fiber.Map{
		"items": banners,
		"meta":  dto.ListMeta{Total: len(banners)},
	})
}

func (h *BannerHandler) create(c *fiber.Ctx) error {
	var payload dto.BannerCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid banner")
	}

	payload.Title = h.sanitizer.Sanitize(payload.Title)
	payload.Description = h.sanitizer.Sanitize(payload.Description)

	if !h.store.AddBanner(c.UserContext(), payload.ToModel()) {
		return utils.SendError(c, fiber.StatusConflict, "banner id already exists")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "banner created", nil)
}

func (h *BannerHandler) update(c *fiber.Ctx) error {
	id := models.ID(c.Params("id"))

	var payload dto.BannerUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid banner")
	}

	if payload.Title != nil {
		clean := h.sanitizer.Sanitize(*payload.Title)
		payload.Title = &clean
	}
	if payload.Description != nil {
		clean := h.sanitizer.Sanitize(*payload.Description)
		payload.Description = &clean
	}

	if !h.store.UpdateBanner(c.UserContext(), id, payload.ToPatch()) {
		return utils.SendError(c, fiber.StatusNotFound, "banner not found")
	}
	return utils.SendSuccess(c, "banner updated", nil)
}

func (h *BannerHandler) remove(c *fiber.Ctx) error {
	id := models.ID(c.Params("id"))
	if !h.store.DeleteBanner(c.UserContext(), id) {
		return utils.SendError(c, fiber.StatusNotFound, "banner not found")
	}
	return utils.SendSuccess(c, "banner deleted", nil)
}
