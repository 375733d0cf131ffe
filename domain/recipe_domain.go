package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddRecipe    = "recipe added successfully"
	MessageSuccessUpdateRecipe = "recipe updated successfully"
	MessageSuccessDeleteRecipe = "recipe removed successfully"
	MessageSuccessGetRecipes   = "recipes retrieved successfully"

	MessageFailedAddRecipe    = "failed to add recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"
	MessageFailedGetRecipes   = "failed to retrieve recipes"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	AddRecipeRequest struct {
		Title           string   `json:"title" validate:"required"`
		Cuisine         string   `json:"cuisine" validate:"required"`
		PrepTimeMinutes int      `json:"prep_time_minutes" validate:"required,min=1"`
		Calories        int      `json:"calories" validate:"omitempty,min=0"`
		ImageURL        string   `json:"image_url" validate:"omitempty,url"`
		Ingredients     []string `json:"ingredients" validate:"required,min=1"`
		Instructions    string   `json:"instructions" validate:"required"`
	}

	UpdateRecipeRequest struct {
		Title           string   `json:"title" validate:"omitempty"`
		Cuisine         string   `json:"cuisine" validate:"omitempty"`
		PrepTimeMinutes int      `json:"prep_time_minutes" validate:"omitempty,min=1"`
		Calories        int      `json:"calories" validate:"omitempty,min=0"`
		ImageURL        string   `json:"image_url" validate:"omitempty,url"`
		Ingredients     []string `json:"ingredients" validate:"omitempty,min=1"`
		Instructions    string   `json:"instructions" validate:"omitempty"`
	}

	RecipeResponse struct {
		ID              string    `json:"id"`
		Title           string    `json:"title"`
		Cuisine         string    `json:"cuisine"`
		PrepTimeMinutes int       `json:"prep_time_minutes"`
		Calories        int       `json:"calories"`
		ImageURL        string    `json:"image_url,omitempty"`
		Ingredients     []string  `json:"ingredients"`
		Instructions    string    `json:"instructions"`
		CreatedAt       time.Time `json:"created_at"`
	}
)
