package recipe

import (
	"Savora-Admin/domain"
	"Savora-Admin/entities"
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		AddRecipe(ctx context.Context, req domain.AddRecipeRequest, userID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) AddRecipe(ctx context.Context, req domain.AddRecipeRequest, userID string) (domain.RecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	ingredients, err := json.Marshal(req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:              uuid.New(),
		UserID:          userUUID,
		Title:           req.Title,
		Cuisine:         req.Cuisine,
		PrepTimeMinutes: req.PrepTimeMinutes,
		Calories:        req.Calories,
		ImageURL:        req.ImageURL,
		Ingredients:     string(ingredients),
		Instructions:    req.Instructions,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if req.Title != "" {
		recipe.Title = req.Title
	}
	if req.Cuisine != "" {
		recipe.Cuisine = req.Cuisine
	}
	if req.PrepTimeMinutes > 0 {
		recipe.PrepTimeMinutes = req.PrepTimeMinutes
	}
	if req.Calories > 0 {
		recipe.Calories = req.Calories
	}
	if req.ImageURL != "" {
		recipe.ImageURL = req.ImageURL
	}
	if len(req.Ingredients) > 0 {
		ingredients, err := json.Marshal(req.Ingredients)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.Ingredients = string(ingredients)
	}
	if req.Instructions != "" {
		recipe.Instructions = req.Instructions
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response = append(response, toRecipeResponse(recipe))
	}
	return response, nil
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	var ingredients []string
	// Older rows may hold plain text instead of a JSON list.
	if err := json.Unmarshal([]byte(recipe.Ingredients), &ingredients); err != nil {
		ingredients = []string{recipe.Ingredients}
	}

	return domain.RecipeResponse{
		ID:              recipe.ID.String(),
		Title:           recipe.Title,
		Cuisine:         recipe.Cuisine,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		Calories:        recipe.Calories,
		ImageURL:        recipe.ImageURL,
		Ingredients:     ingredients,
		Instructions:    recipe.Instructions,
		CreatedAt:       recipe.CreatedAt,
	}
}
