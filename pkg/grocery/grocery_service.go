package grocery

import (
	"Savora-Admin/domain"
	"Savora-Admin/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GroceryService interface {
		AddItem(ctx context.Context, req domain.AddGroceryItemRequest, userID string) (domain.GroceryItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateGroceryItemRequest) (domain.GroceryItemResponse, error)
		DeleteItem(ctx context.Context, id string) error
		GetItems(ctx context.Context) ([]domain.GroceryItemResponse, error)
		ToggleItem(ctx context.Context, id string) (domain.GroceryItemResponse, error)
		ClearCompleted(ctx context.Context) error
	}

	groceryService struct {
		groceryRepository GroceryRepository
	}
)

func NewGroceryService(groceryRepository GroceryRepository) GroceryService {
	return &groceryService{groceryRepository: groceryRepository}
}

func (s *groceryService) AddItem(ctx context.Context, req domain.AddGroceryItemRequest, userID string) (domain.GroceryItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GroceryItemResponse{}, domain.ErrParseUUID
	}

	item := &entities.GroceryItem{
		ID:       uuid.New(),
		UserID:   userUUID,
		Name:     req.Name,
		Category: req.Category,
		IsBought: false,
		Price:    req.Price,
	}

	if err := s.groceryRepository.AddItem(ctx, item); err != nil {
		return domain.GroceryItemResponse{}, err
	}

	return toGroceryResponse(item), nil
}

func (s *groceryService) UpdateItem(ctx context.Context, id string, req domain.UpdateGroceryItemRequest) (domain.GroceryItemResponse, error) {
	item, err := s.groceryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryItemResponse{}, domain.ErrGroceryItemNotFound
		}
		return domain.GroceryItemResponse{}, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Price.Set {
		if req.Price.Value != nil && *req.Price.Value < 0 {
			return domain.GroceryItemResponse{}, domain.ErrNegativePrice
		}
		// explicit null clears the price
		item.Price = req.Price.Value
	}

	if err := s.groceryRepository.UpdateItem(ctx, item); err != nil {
		return domain.GroceryItemResponse{}, err
	}

	return toGroceryResponse(item), nil
}

func (s *groceryService) DeleteItem(ctx context.Context, id string) error {
	if err := s.groceryRepository.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGroceryItemNotFound
		}
		return err
	}
	return nil
}

func (s *groceryService) GetItems(ctx context.Context) ([]domain.GroceryItemResponse, error) {
	items, err := s.groceryRepository.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.GroceryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toGroceryResponse(item))
	}
	return response, nil
}

func (s *groceryService) ToggleItem(ctx context.Context, id string) (domain.GroceryItemResponse, error) {
	item, err := s.groceryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryItemResponse{}, domain.ErrGroceryItemNotFound
		}
		return domain.GroceryItemResponse{}, err
	}

	item.IsBought = !item.IsBought
	if err := s.groceryRepository.UpdateItem(ctx, item); err != nil {
		return domain.GroceryItemResponse{}, err
	}

	return toGroceryResponse(item), nil
}

func (s *groceryService) ClearCompleted(ctx context.Context) error {
	return s.groceryRepository.DeleteBoughtItems(ctx)
}

func toGroceryResponse(item *entities.GroceryItem) domain.GroceryItemResponse {
	return domain.GroceryItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		Category:  item.Category,
		IsBought:  item.IsBought,
		Price:     item.Price,
		CreatedAt: item.CreatedAt,
	}
}
