package service_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/comment"
)

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*comment.Comment), args.Error(1)
}

func (m *mockCommentRepository) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]comment.Comment, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]comment.Comment), args.Error(1)
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCommentRepository) CountByRecipe(ctx context.Context, recipeID uuid.UUID) (int, error) {
	args := m.Called(ctx, recipeID)
	return args.Int(0), args.Error(1)
}
