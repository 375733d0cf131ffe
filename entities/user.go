package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"unique" json:"email"`
	Password string    `json:"-"`
	Role     string    `json:"role"`   // "admin", "manager", "user"
	Plan     string    `json:"plan"`   // "Free", "Pro", "Premium"
	Status   string    `json:"status"` // "Active", "Suspended"

	// Per-user credentials for the external passthroughs. Empty means
	// fall back to the server-wide default from config.
	OpenAIKey      string `json:"openai_key,omitempty"`
	SpoonacularKey string `json:"spoonacular_key,omitempty"`

	Timestamp
}
