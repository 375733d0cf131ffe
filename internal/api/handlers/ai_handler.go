package handlers

import (
	"Savora-Admin/domain"
	"Savora-Admin/internal/api/presenters"
	"Savora-Admin/pkg/ai"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AIHandler interface {
		Chat(c *fiber.Ctx) error
		AnalyzeInventory(c *fiber.Ctx) error
	}

	aiHandler struct {
		aiService ai.AIService
		validator *validator.Validate
	}
)

func NewAIHandler(aiService ai.AIService, validator *validator.Validate) AIHandler {
	return &aiHandler{
		aiService: aiService,
		validator: validator,
	}
}

func (h *aiHandler) Chat(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ChatRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedChat, err)
	}

	res, err := h.aiService.Chat(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrMissingOpenAIKey) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingOpenAIKey, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedChat, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessChat)
}

func (h *aiHandler) AnalyzeInventory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AnalyzeInventoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.aiService.AnalyzeInventory(c.Context(), *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingOpenAIKey):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingOpenAIKey, err)
		case errors.Is(err, domain.ErrAIResponseInvalid):
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageFailedAnalyzeInventory, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedAnalyzeInventory, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAnalyzeInventory)
}
