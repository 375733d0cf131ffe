package inventory

import (
	"Savora-Admin/domain"
	"Savora-Admin/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	InventoryService interface {
		AddItem(ctx context.Context, req domain.AddInventoryItemRequest, userID string) (domain.InventoryItemResponse, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest) (domain.InventoryItemResponse, error)
		DeleteItem(ctx context.Context, id string) error
		GetItems(ctx context.Context) ([]domain.InventoryItemResponse, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository) InventoryService {
	return &inventoryService{inventoryRepository: inventoryRepository}
}

func (s *inventoryService) AddItem(ctx context.Context, req domain.AddInventoryItemRequest, userID string) (domain.InventoryItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.InventoryItemResponse{}, domain.ErrParseUUID
	}

	var expiry *time.Time
	if req.Expiry != "" {
		parsed, err := time.Parse("2006-01-02", req.Expiry)
		if err != nil {
			return domain.InventoryItemResponse{}, domain.ErrInvalidExpiryDate
		}
		expiry = &parsed
	}

	item := &entities.InventoryItem{
		ID:       uuid.New(),
		UserID:   userUUID,
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Expiry:   expiry,
		Status:   ClassifyExpiry(expiry, time.Now()),
		Location: req.Location,
	}

	if err := s.inventoryRepository.AddItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, req domain.UpdateInventoryItemRequest) (domain.InventoryItemResponse, error) {
	item, err := s.inventoryRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.InventoryItemResponse{}, domain.ErrItemNotFound
		}
		return domain.InventoryItemResponse{}, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Quantity != "" {
		item.Quantity = req.Quantity
	}
	if req.Location != "" {
		item.Location = req.Location
	}
	if req.Expiry != nil {
		if *req.Expiry == "" {
			item.Expiry = nil
		} else {
			parsed, err := time.Parse("2006-01-02", *req.Expiry)
			if err != nil {
				return domain.InventoryItemResponse{}, domain.ErrInvalidExpiryDate
			}
			item.Expiry = &parsed
		}

		// The persisted status is a denormalized cache, refreshed on every
		// expiry change. The stats endpoint never trusts it and reclassifies.
		item.Status = ClassifyExpiry(item.Expiry, time.Now())
	}

	if err := s.inventoryRepository.UpdateItem(ctx, item); err != nil {
		return domain.InventoryItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	if err := s.inventoryRepository.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}
	return nil
}

func (s *inventoryService) GetItems(ctx context.Context) ([]domain.InventoryItemResponse, error) {
	items, err := s.inventoryRepository.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	return response, nil
}

func toItemResponse(item *entities.InventoryItem) domain.InventoryItemResponse {
	return domain.InventoryItemResponse{
		ID:        item.ID.String(),
		Name:      item.Name,
		Category:  item.Category,
		Quantity:  item.Quantity,
		Expiry:    item.Expiry,
		Status:    item.Status,
		Location:  item.Location,
		CreatedAt: item.CreatedAt,
	}
}
