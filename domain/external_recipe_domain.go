package domain

import (
	"errors"
)

var (
	MessageSuccessSearchRecipes   = "recipes retrieved successfully"
	MessageSuccessGetRecipeDetail = "recipe detail retrieved successfully"

	MessageFailedSearchRecipes   = "error searching recipes"
	MessageFailedGetRecipeDetail = "error fetching recipe details"
	MessageMissingSpoonacularKey = "Spoonacular API key not found, please add it in settings"

	ErrMissingSpoonacularKey = errors.New("spoonacular api key not configured")
	ErrSpoonacularUpstream   = errors.New("spoonacular request failed")
)

type (
	RecipeSearchRequest struct {
		Query   string `query:"query"`
		Cuisine string `query:"cuisine"`
		Diet    string `query:"diet"`
		Type    string `query:"type"`
	}

	ExternalNutrient struct {
		Name   string  `json:"name"`
		Amount float64 `json:"amount"`
	}

	ExternalNutrition struct {
		Nutrients []ExternalNutrient `json:"nutrients"`
	}

	ExternalInstructionStep struct {
		Step string `json:"step"`
	}

	ExternalInstructions struct {
		Steps []ExternalInstructionStep `json:"steps"`
	}

	ExternalRecipe struct {
		ID                   int                    `json:"id"`
		Title                string                 `json:"title"`
		Image                string                 `json:"image"`
		ReadyInMinutes       int                    `json:"readyInMinutes"`
		Servings             int                    `json:"servings"`
		Cuisines             []string               `json:"cuisines"`
		Nutrition            ExternalNutrition      `json:"nutrition"`
		AnalyzedInstructions []ExternalInstructions `json:"analyzedInstructions"`
	}

	RecipeSearchResponse struct {
		Results      []ExternalRecipe `json:"results"`
		TotalResults int              `json:"totalResults"`
		IsMock       bool             `json:"is_mock"`
	}
)
