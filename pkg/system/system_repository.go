package system

import (
	"Savora-Admin/domain"
	"Savora-Admin/entities"
	"context"

	"gorm.io/gorm"
)

type (
	SystemRepository interface {
		CountUsers(ctx context.Context) (int64, error)
		CountUsersByPlan(ctx context.Context) ([]domain.PlanCount, error)
		GetInventoryItems(ctx context.Context) ([]*entities.InventoryItem, error)
		CountItemsByLocation(ctx context.Context) ([]domain.LocationCount, error)
		GetUnboughtGroceryItems(ctx context.Context) ([]*entities.GroceryItem, error)
		CountRecipes(ctx context.Context) (int64, error)
		GetRecentUsers(ctx context.Context, limit int) ([]*entities.User, error)
		GetRecentRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error)
		GetRecentItems(ctx context.Context, limit int) ([]*entities.InventoryItem, error)
	}

	systemRepository struct {
		db *gorm.DB
	}
)

func NewSystemRepository(db *gorm.DB) SystemRepository {
	return &systemRepository{db: db}
}

func (r *systemRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *systemRepository) CountUsersByPlan(ctx context.Context) ([]domain.PlanCount, error) {
	var counts []domain.PlanCount
	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Select("plan, count(id) as count").
		Group("plan").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *systemRepository) GetInventoryItems(ctx context.Context) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *systemRepository) CountItemsByLocation(ctx context.Context) ([]domain.LocationCount, error) {
	var counts []domain.LocationCount
	if err := r.db.WithContext(ctx).Model(&entities.InventoryItem{}).
		Select("location, count(id) as count").
		Group("location").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *systemRepository) GetUnboughtGroceryItems(ctx context.Context) ([]*entities.GroceryItem, error) {
	var items []*entities.GroceryItem
	if err := r.db.WithContext(ctx).Where("is_bought = ?", false).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *systemRepository) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *systemRepository) GetRecentUsers(ctx context.Context, limit int) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *systemRepository) GetRecentRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *systemRepository) GetRecentItems(ctx context.Context, limit int) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
