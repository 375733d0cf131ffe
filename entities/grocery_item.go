package entities

import (
	"github.com/google/uuid"
)

type GroceryItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	IsBought bool      `json:"is_bought"`
	Price    *float64  `json:"price,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
