package comment

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a user-authored note attached to a recipe. It lives and dies
// with its parent recipe and may only be deleted by its author.
type Comment struct {
	ID      uuid.UUID `db:"id" json:"id"`
	Content string    `db:"content" json:"content"`

	// Timestamp is the creation time; listings order by it, so per-recipe
	// comment order follows insertion order.
	Timestamp time.Time `db:"timestamp" json:"timestamp"`

	UserID   uuid.UUID `db:"user_id" json:"user_id"`
	RecipeID uuid.UUID `db:"recipe_id" json:"recipe_id"`
}
