package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/recipe"
	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/infrastructure/storage"
	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/shared/authz"
)

type recipeService struct {
	repo       recipe.Repository
	storage    storage.ObjectStorage
	processor  *storage.ImageProcessor
	categories []string
}

// NewRecipeService builds the content store service. categories is the
// configured allow-list.
func NewRecipeService(repo recipe.Repository, objectStorage storage.ObjectStorage, categories []string) recipe.Service {
	return &recipeService{
		repo:       repo,
		storage:    objectStorage,
		processor:  storage.NewImageProcessor(),
		categories: categories,
	}
}

// Create stores a new recipe for ownerID. The image, when present, is
// persisted to object storage first: the row is only written after the
// upload succeeded, so a failed upload never leaves a dangling reference.
func (s *recipeService) Create(ctx context.Context, ownerID uuid.UUID, req recipe.CreateRecipeRequest, image *recipe.ImageUpload) (*recipe.RecipeDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := req.ValidateCategory(s.categories); err != nil {
		return nil, err
	}

	id := uuid.New()

	imageURL, err := s.storeImage(ctx, id, image)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rec := &recipe.Recipe{
		ID:           id,
		Title:        req.Title,
		Category:     req.Category,
		Description:  req.Description,
		PrepTime:     req.PrepTime,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Image:        imageURL,
		UserID:       ownerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		// The row was never written; drop the images we just uploaded.
		if imageURL != nil {
			s.cleanupImages(ctx, id)
		}
		return nil, err
	}

	dto := rec.ToDTO()
	return &dto, nil
}

func (s *recipeService) GetByID(ctx context.Context, id uuid.UUID) (*recipe.RecipeDTO, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := rec.ToDTO()
	return &dto, nil
}

func (s *recipeService) List(ctx context.Context, category string) ([]recipe.RecipeDTO, error) {
	var filter *string
	if category != "" {
		filter = &category
	}

	recipes, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return recipe.ToDTOs(recipes), nil
}

// Update replaces all mutable fields. Only the owner may update; the image
// is replaced only when a new one arrived with the request.
func (s *recipeService) Update(ctx context.Context, id, actorID uuid.UUID, req recipe.UpdateRecipeRequest, image *recipe.ImageUpload) (*recipe.RecipeDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := req.ValidateCategory(s.categories); err != nil {
		return nil, err
	}

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.CanMutate(actorID, rec.UserID) {
		return nil, recipe.ErrNotOwner
	}

	imageURL := rec.Image
	if image != nil {
		newURL, err := s.storeImage(ctx, id, image)
		if err != nil {
			return nil, err
		}
		imageURL = newURL
	}

	rec.Title = req.Title
	rec.Category = req.Category
	rec.Description = req.Description
	rec.PrepTime = req.PrepTime
	rec.Ingredients = req.Ingredients
	rec.Instructions = req.Instructions
	rec.Image = imageURL
	rec.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, err
	}

	dto := rec.ToDTO()
	return &dto, nil
}

// Delete removes the recipe and, through the cascade, all of its comments.
func (s *recipeService) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanMutate(actorID, rec.UserID) {
		return recipe.ErrNotOwner
	}

	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		return err
	}

	// Stored images are unreferenced now; removal is best effort.
	if rec.Image != nil {
		s.cleanupImages(ctx, id)
	}

	return nil
}

// Search returns an empty slice for a blank keyword. This is a deliberate
// contract: "show me everything" is List's job, not Search's.
func (s *recipeService) Search(ctx context.Context, keyword string) ([]recipe.RecipeDTO, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []recipe.RecipeDTO{}, nil
	}

	recipes, err := s.repo.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}

	return recipe.ToDTOs(recipes), nil
}

func (s *recipeService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *recipeService) AllowedCategories() []string {
	return s.categories
}

// storeImage validates and uploads an image, returning the URL of the large
// variant. A nil upload yields a nil URL.
func (s *recipeService) storeImage(ctx context.Context, recipeID uuid.UUID, image *recipe.ImageUpload) (*string, error) {
	if image == nil {
		return nil, nil
	}

	if !storage.AllowedFilename(image.Filename) {
		return nil, fmt.Errorf("%w: extension not allowed", recipe.ErrInvalidImage)
	}
	if err := s.processor.ValidateImage(image.Data); err != nil {
		return nil, fmt.Errorf("%w: %v", recipe.ErrInvalidImage, err)
	}

	variants, err := s.processor.ProcessImage(image.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", recipe.ErrInvalidImage, err)
	}

	var imageURL string
	for name, data := range variants {
		key := fmt.Sprintf("recipes/%s/%s.jpg", recipeID, name)
		url, err := s.storage.Upload(ctx, key, data, "image/jpeg")
		if err != nil {
			return nil, fmt.Errorf("upload image variant %s: %w", name, err)
		}
		if name == "large" {
			imageURL = url
		}
	}

	return &imageURL, nil
}

func (s *recipeService) cleanupImages(ctx context.Context, recipeID uuid.UUID) {
	prefix := fmt.Sprintf("recipes/%s/", recipeID)
	if err := s.storage.DeleteByPrefix(ctx, prefix); err != nil {
		log.Warn().Err(err).Str("recipe_id", recipeID.String()).Msg("failed to clean up recipe images")
	}
}
