package handlers

import (
	"Savora-Admin/domain"
	"Savora-Admin/internal/api/presenters"
	"Savora-Admin/pkg/grocery"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GroceryHandler interface {
		AddItem(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		GetItems(c *fiber.Ctx) error
		ToggleItem(c *fiber.Ctx) error
		ClearCompleted(c *fiber.Ctx) error
	}

	groceryHandler struct {
		groceryService grocery.GroceryService
		validator      *validator.Validate
	}
)

func NewGroceryHandler(groceryService grocery.GroceryService, validator *validator.Validate) GroceryHandler {
	return &groceryHandler{
		groceryService: groceryService,
		validator:      validator,
	}
}

func (h *groceryHandler) AddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddGroceryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGroceryItem, err)
	}

	res, err := h.groceryService.AddItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, groceryErrorStatus(err), domain.MessageFailedAddGroceryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddGroceryItem)
}

func (h *groceryHandler) UpdateItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UpdateGroceryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGroceryItem, err)
	}

	res, err := h.groceryService.UpdateItem(c.Context(), itemID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, groceryErrorStatus(err), domain.MessageFailedUpdateGroceryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateGroceryItem)
}

func (h *groceryHandler) DeleteItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.groceryService.DeleteItem(c.Context(), itemID); err != nil {
		return presenters.ErrorResponse(c, groceryErrorStatus(err), domain.MessageFailedDeleteGroceryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteGroceryItem)
}

func (h *groceryHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.groceryService.GetItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetGroceryItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetGroceryItems)
}

func (h *groceryHandler) ToggleItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	res, err := h.groceryService.ToggleItem(c.Context(), itemID)
	if err != nil {
		return presenters.ErrorResponse(c, groceryErrorStatus(err), domain.MessageFailedToggleGroceryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleGroceryItem)
}

func (h *groceryHandler) ClearCompleted(c *fiber.Ctx) error {
	if err := h.groceryService.ClearCompleted(c.Context()); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedClearCompleted, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearCompleted)
}

func groceryErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrGroceryItemNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrParseUUID), errors.Is(err, domain.ErrNegativePrice):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
