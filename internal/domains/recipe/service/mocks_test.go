package service_test

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/recipe"
)

type mockRecipeRepository struct {
	mock.Mock
}

func (m *mockRecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockRecipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) List(ctx context.Context, categoryFilter *string) ([]recipe.Recipe, error) {
	args := m.Called(ctx, categoryFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]recipe.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) Update(ctx context.Context, rec *recipe.Recipe) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockRecipeRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRecipeRepository) Search(ctx context.Context, keyword string) ([]recipe.Recipe, error) {
	args := m.Called(ctx, keyword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]recipe.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// fakeObjectStorage keeps uploaded objects in a map so tests can assert on
// what got stored and what got cleaned up.
type fakeObjectStorage struct {
	objects   map[string][]byte
	uploadErr error
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{objects: make(map[string][]byte)}
}

func (f *fakeObjectStorage) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.objects[key] = data
	return "http://storage.local/recipes-bucket/" + key, nil
}

func (f *fakeObjectStorage) Delete(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func (f *fakeObjectStorage) DeleteByPrefix(_ context.Context, prefix string) error {
	for key := range f.objects {
		if strings.HasPrefix(key, prefix) {
			delete(f.objects, key)
		}
	}
	return nil
}
