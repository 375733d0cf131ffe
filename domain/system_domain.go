package domain

import (
	"time"
)

var (
	MessageSuccessGetStats = "system statistics retrieved successfully"
	MessageFailedGetStats  = "failed to retrieve system statistics"
)

type (
	PlanCount struct {
		Plan  string `json:"plan"`
		Count int64  `json:"count"`
	}

	LocationCount struct {
		Location string `json:"location"`
		Count    int64  `json:"count"`
	}

	RecentUser struct {
		Name      string    `json:"name"`
		CreatedAt time.Time `json:"created_at"`
	}

	RecentRecipe struct {
		Title     string    `json:"title"`
		CreatedAt time.Time `json:"created_at"`
	}

	RecentItem struct {
		Name      string    `json:"name"`
		Location  string    `json:"location"`
		CreatedAt time.Time `json:"created_at"`
	}

	UserStats struct {
		Total int64       `json:"total"`
		Plans []PlanCount `json:"plans"`
	}

	InventoryStats struct {
		Total        int             `json:"total"`
		ExpiringSoon int             `json:"expiring_soon"`
		Expired      int             `json:"expired"`
		Locations    []LocationCount `json:"locations"`
	}

	GroceryStats struct {
		EstimatedBudget float64 `json:"estimated_budget"`
	}

	RecipeStats struct {
		Total int64 `json:"total"`
	}

	RecentActivity struct {
		Users   []RecentUser   `json:"users"`
		Recipes []RecentRecipe `json:"recipes"`
		Items   []RecentItem   `json:"items"`
	}

	SystemStatsResponse struct {
		Users          UserStats      `json:"users"`
		Inventory      InventoryStats `json:"inventory"`
		Grocery        GroceryStats   `json:"grocery"`
		Recipes        RecipeStats    `json:"recipes"`
		RecentActivity RecentActivity `json:"recent_activity"`
	}
)
