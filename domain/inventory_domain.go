package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddItem    = "inventory item added successfully"
	MessageSuccessUpdateItem = "inventory item updated successfully"
	MessageSuccessDeleteItem = "inventory item removed successfully"
	MessageSuccessGetItems   = "inventory items retrieved successfully"

	MessageFailedAddItem    = "failed to add inventory item"
	MessageFailedUpdateItem = "failed to update inventory item"
	MessageFailedDeleteItem = "failed to delete inventory item"
	MessageFailedGetItems   = "failed to retrieve inventory items"

	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
)

type (
	AddInventoryItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Category string `json:"category" validate:"required"`
		Quantity string `json:"qty" validate:"required"`
		Expiry   string `json:"expiry" validate:"omitempty"`
		Location string `json:"location" validate:"required,oneof=Pantry Fridge Freezer"`
	}

	UpdateInventoryItemRequest struct {
		Name     string  `json:"name" validate:"omitempty"`
		Category string  `json:"category" validate:"omitempty"`
		Quantity string  `json:"qty" validate:"omitempty"`
		Expiry   *string `json:"expiry" validate:"omitempty"`
		Location string  `json:"location" validate:"omitempty,oneof=Pantry Fridge Freezer"`
	}

	InventoryItemResponse struct {
		ID        string     `json:"id"`
		Name      string     `json:"name"`
		Category  string     `json:"category"`
		Quantity  string     `json:"qty"`
		Expiry    *time.Time `json:"expiry,omitempty"`
		Status    string     `json:"status"`
		Location  string     `json:"location"`
		CreatedAt time.Time  `json:"created_at"`
	}
)
