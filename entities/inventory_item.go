package entities

import (
	"time"

	"github.com/google/uuid"
)

type InventoryItem struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID  `json:"user_id"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Quantity string     `json:"qty"`
	Expiry   *time.Time `json:"expiry,omitempty"`
	Status   string     `json:"status"`   // "Fresh", "Expiring Soon", "Expired" (denormalized, see pkg/inventory)
	Location string     `json:"location"` // "Pantry", "Fridge", "Freezer"

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
