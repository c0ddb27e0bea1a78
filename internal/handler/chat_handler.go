package handler

import (
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/takasapp/takas-admin-api/internal/dto"
	"github.com/takasapp/takas-admin-api/internal/models"
	"github.com/takasapp/takas-admin-api/internal/store"
	"github.com/takasapp/takas-admin-api/internal/utils"
)

// ChatHandler serves read-only chat thread and message views.
type ChatHandler struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewChatHandler constructs a chat handler.
func NewChatHandler(st *store.Store, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		store:  st,
		logger: logger.With().Str("component", "chat_handler").Logger(),
	}
}

// Register wires chat routes.
func (h *ChatHandler) Register(router fiber.Router) {
	router.Get("/", h.listThreads)
	router.Get("/:id/messages", h.listMessages)
}

func (h *ChatHandler) listThreads(c *fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid limit")
	}
	offset, err := parseQueryInt(c, "offset")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid offset")
	}

	snap := h.store.Snapshot()

	// Most recently active threads first, matching the panel's chat list.
	threads := make([]models.ChatThread, len(snap.Threads))
	copy(threads, snap.Threads)
	sort.SliceStable(threads, func(i, j int) bool {
		return threads[i].LastMessageTime.After(threads[j].LastMessageTime)
	})

	page := paginate(threads, limit, offset)

	return utils.SendSuccess(c, "chat threads", fiber.Map{
		"items": page,
		"meta":  dto.ListMeta{Total: len(threads), Limit: limit, Offset: offset},
	})
}

func (h *ChatHandler) listMessages(c *fiber.Ctx) error {
	id := models.ID(c.Params("id"))
	snap := h.store.Snapshot()

	if _, ok := snap.ThreadByID(id); !ok {
		return utils.SendError(c, fiber.StatusNotFound, "thread not found")
	}

	messages := snap.MessagesByThread(id)
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Time.Before(messages[j].Time)
	})

	return utils.SendSuccess(c, "chat messages", fiber.Map{
		"items": messages,
		"meta":  dto.ListMeta{Total: len(messages)},
	})
}
