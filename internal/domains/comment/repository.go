package comment

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the comment store's data access contract.
type Repository interface {
	// Create inserts a new comment.
	// Returns ErrRecipeNotFound when recipe_id references no existing recipe.
	Create(ctx context.Context, comment *Comment) error

	// GetByID returns ErrCommentNotFound for an unknown id.
	GetByID(ctx context.Context, id uuid.UUID) (*Comment, error)

	// ListByRecipe returns the recipe's comments in insertion order.
	ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]Comment, error)

	// Delete returns ErrCommentNotFound when the id is unknown, which makes
	// a second delete of the same id observable as a failure.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByRecipe counts the comments attached to a recipe.
	CountByRecipe(ctx context.Context, recipeID uuid.UUID) (int, error)
}
