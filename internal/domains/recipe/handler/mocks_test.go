package handler_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/comment"
	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/recipe"
)

type mockRecipeService struct {
	mock.Mock
}

func (m *mockRecipeService) Create(ctx context.Context, ownerID uuid.UUID, req recipe.CreateRecipeRequest, image *recipe.ImageUpload) (*recipe.RecipeDTO, error) {
	args := m.Called(ctx, ownerID, req, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.RecipeDTO), args.Error(1)
}

func (m *mockRecipeService) GetByID(ctx context.Context, id uuid.UUID) (*recipe.RecipeDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.RecipeDTO), args.Error(1)
}

func (m *mockRecipeService) List(ctx context.Context, category string) ([]recipe.RecipeDTO, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]recipe.RecipeDTO), args.Error(1)
}

func (m *mockRecipeService) Update(ctx context.Context, id, actorID uuid.UUID, req recipe.UpdateRecipeRequest, image *recipe.ImageUpload) (*recipe.RecipeDTO, error) {
	args := m.Called(ctx, id, actorID, req, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.RecipeDTO), args.Error(1)
}

func (m *mockRecipeService) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	args := m.Called(ctx, id, actorID)
	return args.Error(0)
}

func (m *mockRecipeService) Search(ctx context.Context, keyword string) ([]recipe.RecipeDTO, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]recipe.RecipeDTO), args.Error(1)
}

func (m *mockRecipeService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockRecipeService) AllowedCategories() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

type mockCommentService struct {
	mock.Mock
}

func (m *mockCommentService) Add(ctx context.Context, recipeID, actorID uuid.UUID, content string) (*comment.CommentDTO, error) {
	args := m.Called(ctx, recipeID, actorID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*comment.CommentDTO), args.Error(1)
}

func (m *mockCommentService) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]comment.CommentDTO, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]comment.CommentDTO), args.Error(1)
}

func (m *mockCommentService) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	args := m.Called(ctx, id, actorID)
	return args.Error(0)
}
