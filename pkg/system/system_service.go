package system

import (
	"Savora-Admin/domain"
	"Savora-Admin/pkg/inventory"
	"context"
	"time"
)

const recentActivityLimit = 3

type (
	SystemService interface {
		GetSystemStats(ctx context.Context) (domain.SystemStatsResponse, error)
	}

	systemService struct {
		systemRepository SystemRepository
	}
)

func NewSystemService(systemRepository SystemRepository) SystemService {
	return &systemService{systemRepository: systemRepository}
}

// GetSystemStats assembles the dashboard snapshot in one pass. Inventory
// items are reclassified against the current date rather than trusting the
// persisted status field, which can go stale between writes. Any failing
// sub-query fails the whole snapshot.
func (s *systemService) GetSystemStats(ctx context.Context) (domain.SystemStatsResponse, error) {
	totalUsers, err := s.systemRepository.CountUsers(ctx)
	if err != nil {
		return domain.SystemStatsResponse{}, err
	}

	planCounts, err := s.systemRepository.CountUsersByPlan(ctx)
	if err != nil {
		return domain.SystemStatsResponse{}, err
	}

	items, err := s.systemRepository.GetInventoryItems(ctx)
	if err != nil {
		return domain.SystemStatsResponse{}, err
	}

	now := time.Now()
	expiringSoon, expired := 0, 0
	for _, item := range items {
		switch inventory.ClassifyExpiry(item.Expiry, now) {
		case inventory.StatusExpiringSoon:
			expiringSoon++
		case inventory.StatusExpired:
			expired++
		}
	}

	locationCounts, err := s.systemRepository.CountItemsByLocation(ctx)
	if err != nil {
		return domain.SystemStatsResponse{}, err
	}

	unbought, err := s.systemRepository.GetUnboughtGroceryItems(ctx)
	if err != nil {
		return domain.SystemStatsResponse{}, err
	}

	estimatedBudget := 0.0
	for _, item := range unbought {
		if item.Price != nil {
			estimatedBudget += *item.Price
		}
	}

	totalRecipes, err := s.systemRepository.CountRecipes(ctx)
	if err != nil {
		return domain.SystemStatsResponse{}, err
	}

	recentUsers, err := s.systemRepository.GetRecentUsers(ctx, recentActivityLimit)
	if err != nil {
		return domain.SystemStatsResponse{}, err
	}

	recentRecipes, err := s.systemRepository.GetRecentRecipes(ctx, recentActivityLimit)
	if err != nil {
		return domain.SystemStatsResponse{}, err
	}

	recentItems, err := s.systemRepository.GetRecentItems(ctx, recentActivityLimit)
	if err != nil {
		return domain.SystemStatsResponse{}, err
	}

	activity := domain.RecentActivity{
		Users:   make([]domain.RecentUser, 0, len(recentUsers)),
		Recipes: make([]domain.RecentRecipe, 0, len(recentRecipes)),
		Items:   make([]domain.RecentItem, 0, len(recentItems)),
	}
	for _, user := range recentUsers {
		activity.Users = append(activity.Users, domain.RecentUser{
			Name:      user.Name,
			CreatedAt: user.CreatedAt,
		})
	}
	for _, recipe := range recentRecipes {
		activity.Recipes = append(activity.Recipes, domain.RecentRecipe{
			Title:     recipe.Title,
			CreatedAt: recipe.CreatedAt,
		})
	}
	for _, item := range recentItems {
		activity.Items = append(activity.Items, domain.RecentItem{
			Name:      item.Name,
			Location:  item.Location,
			CreatedAt: item.CreatedAt,
		})
	}

	return domain.SystemStatsResponse{
		Users: domain.UserStats{
			Total: totalUsers,
			Plans: planCounts,
		},
		Inventory: domain.InventoryStats{
			Total:        len(items),
			ExpiringSoon: expiringSoon,
			Expired:      expired,
			Locations:    locationCounts,
		},
		Grocery: domain.GroceryStats{
			EstimatedBudget: estimatedBudget,
		},
		Recipes: domain.RecipeStats{
			Total: totalRecipes,
		},
		RecentActivity: activity,
	}, nil
}
