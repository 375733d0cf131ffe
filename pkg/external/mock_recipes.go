package external

import (
	"Savora-Admin/domain"
)

// Served by SearchRecipes when no Spoonacular key is configured.
var mockRecipes = []domain.ExternalRecipe{
	{
		ID:             716429,
		Title:          "Pasta with Garlic, Scallions, Cauliflower & Breadcrumbs",
		Image:          "https://spoonacular.com/recipeImages/716429-312x231.jpg",
		ReadyInMinutes: 45,
		Servings:       2,
		Cuisines:       []string{"Italian"},
		Nutrition: domain.ExternalNutrition{
			Nutrients: []domain.ExternalNutrient{{Name: "Calories", Amount: 584}},
		},
		AnalyzedInstructions: []domain.ExternalInstructions{{
			Steps: []domain.ExternalInstructionStep{
				{Step: "Wash the cauliflower and cut into small florets."},
				{Step: "Cook pasta in boiling salted water."},
				{Step: "Saute garlic and scallions in olive oil."},
			},
		}},
	},
	{
		ID:             715538,
		Title:          "What to make for dinner tonight?? Bruschetta Style Pork & Pasta",
		Image:          "https://spoonacular.com/recipeImages/715538-312x231.jpg",
		ReadyInMinutes: 35,
		Servings:       2,
		Cuisines:       []string{"Italian", "Mediterranean"},
		Nutrition: domain.ExternalNutrition{
			Nutrients: []domain.ExternalNutrient{{Name: "Calories", Amount: 450}},
		},
		AnalyzedInstructions: []domain.ExternalInstructions{{
			Steps: []domain.ExternalInstructionStep{
				{Step: "Cook pasta according to package directions."},
				{Step: "Season pork with salt and pepper."},
				{Step: "Grill pork until cooked through."},
			},
		}},
	},
	{
		ID:             644387,
		Title:          "Garlic and Herb Roasted Chicken",
		Image:          "https://spoonacular.com/recipeImages/644387-312x231.jpg",
		ReadyInMinutes: 60,
		Servings:       4,
		Cuisines:       []string{"American"},
		Nutrition: domain.ExternalNutrition{
			Nutrients: []domain.ExternalNutrient{{Name: "Calories", Amount: 380}},
		},
		AnalyzedInstructions: []domain.ExternalInstructions{{
			Steps: []domain.ExternalInstructionStep{
				{Step: "Preheat oven to 375F."},
				{Step: "Rub chicken with garlic and herbs."},
				{Step: "Roast for 1 hour."},
			},
		}},
	},
	{
		ID:             782585,
		Title:          "Cannellini Bean and Kale Soup",
		Image:          "https://spoonacular.com/recipeImages/782585-312x231.jpg",
		ReadyInMinutes: 30,
		Servings:       4,
		Cuisines:       []string{"Mediterranean"},
		Nutrition: domain.ExternalNutrition{
			Nutrients: []domain.ExternalNutrient{{Name: "Calories", Amount: 250}},
		},
		AnalyzedInstructions: []domain.ExternalInstructions{{
			Steps: []domain.ExternalInstructionStep{
				{Step: "Saute onions and garlic."},
				{Step: "Add kale and beans with broth."},
				{Step: "Simmer for 20 minutes."},
			},
		}},
	},
}
