package comment

import (
	"context"

	"github.com/google/uuid"
)

// Service is the comment store's business logic contract. Creation is open
// to any authenticated user on any existing recipe; deletion is restricted
// to the author.
type Service interface {
	Add(ctx context.Context, recipeID, actorID uuid.UUID, content string) (*CommentDTO, error)
	ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]CommentDTO, error)
	Delete(ctx context.Context, id, actorID uuid.UUID) error
}
