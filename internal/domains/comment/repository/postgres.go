package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/comment"
)

// PgxPool is the slice of pgxpool.Pool the repository needs; pgxmock
// satisfies it too.
type PgxPool interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type postgresRepository struct {
	pool PgxPool
}

// NewPostgresRepository returns the Postgres-backed comment store.
func NewPostgresRepository(pool PgxPool) comment.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, c *comment.Comment) error {
	query := `
		INSERT INTO comments (id, content, timestamp, user_id, recipe_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		c.ID,
		c.Content,
		c.Timestamp,
		c.UserID,
		c.RecipeID,
	)
	if err != nil {
		// 23503 = foreign_key_violation. The recipe FK is the one that can
		// realistically fire: the author comes from a validated token.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return comment.ErrRecipeNotFound
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*comment.Comment, error) {
	query := `
		SELECT id, content, timestamp, user_id, recipe_id
		FROM comments
		WHERE id = $1
	`

	c := &comment.Comment{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Content,
		&c.Timestamp,
		&c.UserID,
		&c.RecipeID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return c, nil
}

func (r *postgresRepository) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]comment.Comment, error) {
	query := `
		SELECT id, content, timestamp, user_id, recipe_id
		FROM comments
		WHERE recipe_id = $1
		ORDER BY timestamp, id
	`

	rows, err := r.pool.Query(ctx, query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]comment.Comment, 0)
	for rows.Next() {
		var c comment.Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.Timestamp, &c.UserID, &c.RecipeID); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}

	return comments, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}

	return nil
}

func (r *postgresRepository) CountByRecipe(ctx context.Context, recipeID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE recipe_id = $1`, recipeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}

	return count, nil
}
