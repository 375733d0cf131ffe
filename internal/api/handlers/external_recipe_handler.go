package handlers

import (
	"Savora-Admin/domain"
	"Savora-Admin/internal/api/presenters"
	"Savora-Admin/pkg/external"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	ExternalRecipeHandler interface {
		SearchRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
	}

	externalRecipeHandler struct {
		recipeSearchService external.RecipeSearchService
	}
)

func NewExternalRecipeHandler(recipeSearchService external.RecipeSearchService) ExternalRecipeHandler {
	return &externalRecipeHandler{recipeSearchService: recipeSearchService}
}

func (h *externalRecipeHandler) SearchRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := domain.RecipeSearchRequest{
		Query:   c.Query("query"),
		Cuisine: c.Query("cuisine"),
		Diet:    c.Query("diet"),
		Type:    c.Query("type"),
	}

	res, err := h.recipeSearchService.SearchRecipes(c.Context(), req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}

func (h *externalRecipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	res, err := h.recipeSearchService.GetRecipeDetail(c.Context(), recipeID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrMissingSpoonacularKey) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingSpoonacularKey, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}
