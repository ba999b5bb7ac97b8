package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/recipe"
	"github.com/ViktoriaKonoplyanik/recipe-manager/pkg/database"
)

// PgxPool is the slice of pgxpool.Pool the repository needs; pgxmock
// satisfies it too.
type PgxPool interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

const recipeColumns = `id, title, category, description, prep_time, ingredients, instructions, image, user_id, created_at, updated_at`

type postgresRepository struct {
	pool PgxPool
}

// NewPostgresRepository returns the Postgres-backed content store.
func NewPostgresRepository(pool PgxPool) recipe.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	query := `
		INSERT INTO recipes (` + recipeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		rec.ID,
		rec.Title,
		rec.Category,
		rec.Description,
		rec.PrepTime,
		rec.Ingredients,
		rec.Instructions,
		rec.Image,
		rec.UserID,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	if err != nil {
		// 23503 = foreign_key_violation; the only FK on recipes is user_id.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return recipe.ErrOwnerNotFound
		}
		return fmt.Errorf("failed to create recipe: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`

	rec := &recipe.Recipe{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.Title,
		&rec.Category,
		&rec.Description,
		&rec.PrepTime,
		&rec.Ingredients,
		&rec.Instructions,
		&rec.Image,
		&rec.UserID,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, recipe.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	return rec, nil
}

func (r *postgresRepository) List(ctx context.Context, categoryFilter *string) ([]recipe.Recipe, error) {
	// created_at, id keeps insertion order stable even for same-timestamp rows.
	query := `SELECT ` + recipeColumns + ` FROM recipes ORDER BY created_at, id`
	args := []interface{}{}

	if categoryFilter != nil {
		query = `SELECT ` + recipeColumns + ` FROM recipes WHERE category = $1 ORDER BY created_at, id`
		args = append(args, *categoryFilter)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}

func (r *postgresRepository) Update(ctx context.Context, rec *recipe.Recipe) error {
	query := `
		UPDATE recipes
		SET title = $2, category = $3, description = $4, prep_time = $5,
		    ingredients = $6, instructions = $7, image = $8, updated_at = $9
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		rec.ID,
		rec.Title,
		rec.Category,
		rec.Description,
		rec.PrepTime,
		rec.Ingredients,
		rec.Instructions,
		rec.Image,
		rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recipe.ErrRecipeNotFound
	}

	return nil
}

// DeleteCascade removes the comments and the recipe inside one transaction.
// The comments FK also carries ON DELETE CASCADE; the explicit delete keeps
// the invariant independent of the schema.
func (r *postgresRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM comments WHERE recipe_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete recipe comments: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete recipe: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return recipe.ErrRecipeNotFound
		}

		return nil
	})
}

func (r *postgresRepository) Search(ctx context.Context, keyword string) ([]recipe.Recipe, error) {
	// Case-insensitive substring match over the three searchable fields,
	// same store order as List.
	query := `
		SELECT ` + recipeColumns + `
		FROM recipes
		WHERE title ILIKE $1 OR ingredients ILIKE $1 OR category ILIKE $1
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query, "%"+keyword+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}

func (r *postgresRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT category FROM recipes ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	return categories, nil
}

func scanRecipes(rows pgx.Rows) ([]recipe.Recipe, error) {
	recipes := make([]recipe.Recipe, 0)
	for rows.Next() {
		var rec recipe.Recipe
		if err := rows.Scan(
			&rec.ID,
			&rec.Title,
			&rec.Category,
			&rec.Description,
			&rec.PrepTime,
			&rec.Ingredients,
			&rec.Instructions,
			&rec.Image,
			&rec.UserID,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recipes: %w", err)
	}

	return recipes, nil
}
