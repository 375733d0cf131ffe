package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddGroceryItem    = "grocery item added successfully"
	MessageSuccessUpdateGroceryItem = "grocery item updated successfully"
	MessageSuccessDeleteGroceryItem = "grocery item removed successfully"
	MessageSuccessGetGroceryItems   = "grocery items retrieved successfully"
	MessageSuccessToggleGroceryItem = "grocery item toggled successfully"
	MessageSuccessClearCompleted    = "completed items removed"

	MessageFailedAddGroceryItem    = "failed to add grocery item"
	MessageFailedUpdateGroceryItem = "failed to update grocery item"
	MessageFailedDeleteGroceryItem = "failed to delete grocery item"
	MessageFailedGetGroceryItems   = "failed to retrieve grocery items"
	MessageFailedToggleGroceryItem = "failed to toggle grocery item"
	MessageFailedClearCompleted    = "failed to clear completed items"

	ErrGroceryItemNotFound = errors.New("grocery item not found")
	ErrNegativePrice       = errors.New("price must not be negative")
)

type (
	AddGroceryItemRequest struct {
		Name     string   `json:"name" validate:"required"`
		Category string   `json:"category" validate:"required"`
		Price    *float64 `json:"price" validate:"omitempty,min=0"`
	}

	UpdateGroceryItemRequest struct {
		Name     string        `json:"name" validate:"omitempty"`
		Category string        `json:"category" validate:"omitempty"`
		Price    OptionalFloat `json:"price"`
	}

	GroceryItemResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Category  string    `json:"category"`
		IsBought  bool      `json:"is_bought"`
		Price     *float64  `json:"price,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
