package grocery

import (
	"Savora-Admin/entities"
	"context"

	"gorm.io/gorm"
)

type (
	GroceryRepository interface {
		AddItem(ctx context.Context, item *entities.GroceryItem) error
		GetItemByID(ctx context.Context, id string) (*entities.GroceryItem, error)
		GetItems(ctx context.Context) ([]*entities.GroceryItem, error)
		UpdateItem(ctx context.Context, item *entities.GroceryItem) error
		DeleteItem(ctx context.Context, id string) error
		DeleteBoughtItems(ctx context.Context) error
	}

	groceryRepository struct {
		db *gorm.DB
	}
)

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

func (r *groceryRepository) AddItem(ctx context.Context, item *entities.GroceryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *groceryRepository) GetItemByID(ctx context.Context, id string) (*entities.GroceryItem, error) {
	var item entities.GroceryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *groceryRepository) GetItems(ctx context.Context) ([]*entities.GroceryItem, error) {
	var items []*entities.GroceryItem
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *groceryRepository) UpdateItem(ctx context.Context, item *entities.GroceryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *groceryRepository) DeleteItem(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GroceryItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *groceryRepository) DeleteBoughtItems(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("is_bought = ?", true).Delete(&entities.GroceryItem{}).Error
}
