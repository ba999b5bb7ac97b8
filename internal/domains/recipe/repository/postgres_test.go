package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/recipe"
	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/recipe/repository"
)

var recipeRows = []string{
	"id", "title", "category", "description", "prep_time",
	"ingredients", "instructions", "image", "user_id", "created_at", "updated_at",
}

func addRecipeRow(rows *pgxmock.Rows, rec recipe.Recipe) *pgxmock.Rows {
	return rows.AddRow(
		rec.ID, rec.Title, rec.Category, rec.Description, rec.PrepTime,
		rec.Ingredients, rec.Instructions, rec.Image, rec.UserID, rec.CreatedAt, rec.UpdatedAt,
	)
}

func sampleRecipe(ownerID uuid.UUID) recipe.Recipe {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return recipe.Recipe{
		ID:           uuid.New(),
		Title:        "Pancakes",
		Category:     "Breakfast",
		PrepTime:     "20 min",
		Ingredients:  "flour, milk, eggs",
		Instructions: "Mix and fry.",
		UserID:       ownerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestRecipeRepository_Create(t *testing.T) {
	ctx := context.Background()
	rec := sampleRecipe(uuid.New())

	t.Run("inserts a row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO recipes .+").
			WithArgs(rec.ID, rec.Title, rec.Category, rec.Description, rec.PrepTime,
				rec.Ingredients, rec.Instructions, rec.Image, rec.UserID, rec.CreatedAt, rec.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		repo := repository.NewPostgresRepository(mock)
		require.NoError(t, repo.Create(ctx, &rec))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown owner maps the foreign key violation", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("INSERT INTO recipes .+").
			WithArgs(rec.ID, rec.Title, rec.Category, rec.Description, rec.PrepTime,
				rec.Ingredients, rec.Instructions, rec.Image, rec.UserID, rec.CreatedAt, rec.UpdatedAt).
			WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "recipes_user_id_fkey"})

		repo := repository.NewPostgresRepository(mock)
		err = repo.Create(ctx, &rec)

		require.ErrorIs(t, err, recipe.ErrOwnerNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecipeRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	rec := sampleRecipe(uuid.New())

	t.Run("returns the stored row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM recipes WHERE id = \\$1").
			WithArgs(rec.ID).
			WillReturnRows(addRecipeRow(pgxmock.NewRows(recipeRows), rec))

		repo := repository.NewPostgresRepository(mock)
		got, err := repo.GetByID(ctx, rec.ID)

		require.NoError(t, err)
		assert.Equal(t, rec.Title, got.Title)
		assert.Equal(t, rec.UserID, got.UserID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id maps to not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		unknown := uuid.New()
		mock.ExpectQuery("SELECT .+ FROM recipes WHERE id = \\$1").
			WithArgs(unknown).
			WillReturnError(pgx.ErrNoRows)

		repo := repository.NewPostgresRepository(mock)
		got, err := repo.GetByID(ctx, unknown)

		assert.Nil(t, got)
		require.ErrorIs(t, err, recipe.ErrRecipeNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecipeRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("without filter lists all in store order", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		first := sampleRecipe(uuid.New())
		second := sampleRecipe(uuid.New())
		second.Title = "Waffles"

		rows := pgxmock.NewRows(recipeRows)
		addRecipeRow(rows, first)
		addRecipeRow(rows, second)

		mock.ExpectQuery("SELECT .+ FROM recipes ORDER BY created_at, id").
			WillReturnRows(rows)

		repo := repository.NewPostgresRepository(mock)
		got, err := repo.List(ctx, nil)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Pancakes", got[0].Title)
		assert.Equal(t, "Waffles", got[1].Title)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("with filter binds the category", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rec := sampleRecipe(uuid.New())
		mock.ExpectQuery("SELECT .+ FROM recipes WHERE category = \\$1 ORDER BY created_at, id").
			WithArgs("Breakfast").
			WillReturnRows(addRecipeRow(pgxmock.NewRows(recipeRows), rec))

		repo := repository.NewPostgresRepository(mock)
		category := "Breakfast"
		got, err := repo.List(ctx, &category)

		require.NoError(t, err)
		require.Len(t, got, 1)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM recipes ORDER BY created_at, id").
			WillReturnRows(pgxmock.NewRows(recipeRows))

		repo := repository.NewPostgresRepository(mock)
		got, err := repo.List(ctx, nil)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecipeRepository_Update(t *testing.T) {
	ctx := context.Background()
	rec := sampleRecipe(uuid.New())

	t.Run("updates the row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE recipes .+").
			WithArgs(rec.ID, rec.Title, rec.Category, rec.Description, rec.PrepTime,
				rec.Ingredients, rec.Instructions, rec.Image, rec.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := repository.NewPostgresRepository(mock)
		require.NoError(t, repo.Update(ctx, &rec))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows affected maps to not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("UPDATE recipes .+").
			WithArgs(rec.ID, rec.Title, rec.Category, rec.Description, rec.PrepTime,
				rec.Ingredients, rec.Instructions, rec.Image, rec.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := repository.NewPostgresRepository(mock)
		err = repo.Update(ctx, &rec)

		require.ErrorIs(t, err, recipe.ErrRecipeNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecipeRepository_DeleteCascade(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("deletes comments and recipe in one transaction", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM comments WHERE recipe_id = \\$1").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))
		mock.ExpectExec("DELETE FROM recipes WHERE id = \\$1").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		mock.ExpectCommit()

		repo := repository.NewPostgresRepository(mock)
		require.NoError(t, repo.DeleteCascade(ctx, id))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown recipe rolls back", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM comments WHERE recipe_id = \\$1").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectExec("DELETE FROM recipes WHERE id = \\$1").
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		mock.ExpectRollback()

		repo := repository.NewPostgresRepository(mock)
		err = repo.DeleteCascade(ctx, id)

		require.ErrorIs(t, err, recipe.ErrRecipeNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("comment delete failure rolls back before touching recipes", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM comments WHERE recipe_id = \\$1").
			WithArgs(id).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		repo := repository.NewPostgresRepository(mock)
		err = repo.DeleteCascade(ctx, id)

		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecipeRepository_Search(t *testing.T) {
	ctx := context.Background()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rec := sampleRecipe(uuid.New())
	rec.Title = "Chocolate Cake"
	rec.Category = "Dessert"

	mock.ExpectQuery("SELECT .+ FROM recipes\\s+WHERE title ILIKE \\$1 OR ingredients ILIKE \\$1 OR category ILIKE \\$1").
		WithArgs("%cake%").
		WillReturnRows(addRecipeRow(pgxmock.NewRows(recipeRows), rec))

	repo := repository.NewPostgresRepository(mock)
	got, err := repo.Search(ctx, "cake")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Chocolate Cake", got[0].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeRepository_Categories(t *testing.T) {
	ctx := context.Background()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT DISTINCT category FROM recipes ORDER BY category").
		WillReturnRows(pgxmock.NewRows([]string{"category"}).
			AddRow("Breakfast").
			AddRow("Dinner"))

	repo := repository.NewPostgresRepository(mock)
	got, err := repo.Categories(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"Breakfast", "Dinner"}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}
