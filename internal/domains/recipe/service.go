package recipe

import (
	"context"

	"github.com/google/uuid"
)

// Service is the content store's business logic contract. Every mutating
// operation takes the acting user explicitly; there is no ambient session
// state below the HTTP boundary.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, req CreateRecipeRequest, image *ImageUpload) (*RecipeDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RecipeDTO, error)

	// List filters by exact category when category is non-empty.
	List(ctx context.Context, category string) ([]RecipeDTO, error)

	// Update fails with ErrNotOwner unless actorID owns the recipe. A nil
	// image keeps the stored one.
	Update(ctx context.Context, id, actorID uuid.UUID, req UpdateRecipeRequest, image *ImageUpload) (*RecipeDTO, error)

	// Delete fails with ErrNotOwner unless actorID owns the recipe; on
	// success the recipe's comments are gone too.
	Delete(ctx context.Context, id, actorID uuid.UUID) error

	// Search returns an empty slice for an empty or whitespace-only keyword.
	Search(ctx context.Context, keyword string) ([]RecipeDTO, error)

	// Categories lists the distinct categories currently in the store.
	Categories(ctx context.Context) ([]string, error)

	// AllowedCategories exposes the configured allow-list.
	AllowedCategories() []string
}
