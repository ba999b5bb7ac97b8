package recipe

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the content store's data access contract. Reads come back in
// insertion order so listings are stable across calls.
type Repository interface {
	// Create inserts a new recipe.
	// Returns ErrOwnerNotFound when user_id references no existing user.
	Create(ctx context.Context, recipe *Recipe) error

	// GetByID returns ErrRecipeNotFound for an unknown id.
	GetByID(ctx context.Context, id uuid.UUID) (*Recipe, error)

	// List returns recipes whose category equals categoryFilter, or every
	// recipe when categoryFilter is nil.
	List(ctx context.Context, categoryFilter *string) ([]Recipe, error)

	// Update replaces all mutable fields atomically, the image included.
	// Returns ErrRecipeNotFound when the id is unknown.
	Update(ctx context.Context, recipe *Recipe) error

	// DeleteCascade removes the recipe and all of its comments in a single
	// transaction; there is no observable state with the recipe gone and
	// comments still present, or vice versa.
	DeleteCascade(ctx context.Context, id uuid.UUID) error

	// Search matches the keyword case-insensitively as a substring of
	// title, ingredients or category. The caller guarantees keyword is
	// non-empty.
	Search(ctx context.Context, keyword string) ([]Recipe, error)

	// Categories projects the distinct category values present.
	Categories(ctx context.Context) ([]string, error)
}
