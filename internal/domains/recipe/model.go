package recipe

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is the domain entity, mapped 1:1 to the recipes table.
// Every recipe has exactly one owner; only the owner may update or delete it.
type Recipe struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Title    string    `db:"title" json:"title"`
	Category string    `db:"category" json:"category"`

	Description *string `db:"description" json:"description,omitempty"`

	// PrepTime stays free text ("45 min", "1.5 hours"); it is display data,
	// not something the system computes with.
	PrepTime     string `db:"prep_time" json:"prep_time"`
	Ingredients  string `db:"ingredients" json:"ingredients"`
	Instructions string `db:"instructions" json:"instructions"`

	// Image is the stored object URL; nil when no image was uploaded.
	Image *string `db:"image" json:"image,omitempty"`

	UserID uuid.UUID `db:"user_id" json:"user_id"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
