package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/takasapp/takas-admin-api/internal/dto"
	"github.com/takasapp/takas-admin-api/internal/models"
	"github.com/takasapp/takas-admin-api/internal/store"
	"github.com/takasapp/takas-admin-api/internal/utils"
)

// ReportHandler serves the moderation report queue.
type ReportHandler struct {
	store    *store.Store
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewReportHandler constructs a report handler.
func NewReportHandler(st *store.Store, validate *validator.Validate, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		store:    st,
		validate: validate,
		logger:   logger.With().Str("component", "report_handler").Logger(),
	}
}

// Register wires report routes.
func (h *ReportHandler) Register(router fiber.Router) {
	router.Get("/", h.list)
	router.Patch("/:id/resolution", h.resolve)
}

func (h *ReportHandler) list(c *fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid limit")
	}
	offset, err := parseQueryInt(c, "offset")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid offset")
	}

	statusFilter := models.ReportStatus(c.Query("status"))
	switch statusFilter {
	case "", models.ReportOpen, models.ReportInReview, models.ReportResolved, models.ReportRejected:
	default:
		return utils.SendError(c, fiber.StatusBadRequest, "invalid status filter")
	}

	snap := h.store.Snapshot()
	reports := snap.Reports
	if statusFilter != "" {
		filtered := make([]models.ReportItem, 0, len(reports))
		for _, r := range reports {
			if r.Status == statusFilter {
				filtered = append(filtered, r)
			}
		}
		reports = filtered
	}

	page := paginate(reports, limit, offset)

	return utils.SendSuccess(c, "reports", fiber.Map{
		"items": page,
		"meta":  dto.ListMeta{Total: len(reports), Limit: limit, Offset: offset},
	})
}

func (h *ReportHandler) resolve(c *fiber.Ctx) error {
	id := models.ID(c.Params("id"))

	var payload dto.ReportResolutionRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validate.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid resolution status")
	}

	if !h.store.ResolveReport(c.UserContext(), id, models.ReportStatus(payload.Status), payload.Note) {
		return utils.SendError(c, fiber.StatusNotFound, "report not found")
	}
	return utils.SendSuccess(c, "report resolution updated", nil)
}
