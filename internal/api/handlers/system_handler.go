package handlers

import (
	"Savora-Admin/domain"
	"Savora-Admin/internal/api/presenters"
	"Savora-Admin/pkg/system"

	"github.com/gofiber/fiber/v2"
)

type (
	SystemHandler interface {
		GetStats(c *fiber.Ctx) error
	}

	systemHandler struct {
		systemService system.SystemService
	}
)

func NewSystemHandler(systemService system.SystemService) SystemHandler {
	return &systemHandler{systemService: systemService}
}

func (h *systemHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.systemService.GetSystemStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetStats)
}
