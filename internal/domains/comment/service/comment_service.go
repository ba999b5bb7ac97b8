package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/comment"
	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/shared/authz"
)

type commentService struct {
	repo comment.Repository
}

// NewCommentService builds the comment store service.
func NewCommentService(repo comment.Repository) comment.Service {
	return &commentService{repo: repo}
}

// Add attaches a comment to an existing recipe. Any authenticated user may
// comment on any recipe; there is no ownership gate on creation. Blank and
// whitespace-only content is rejected before anything is written, and the
// recipe foreign key rejects comments on recipes that do not exist.
func (s *commentService) Add(ctx context.Context, recipeID, actorID uuid.UUID, content string) (*comment.CommentDTO, error) {
	if strings.TrimSpace(content) == "" {
		return nil, comment.ErrEmptyContent
	}

	c := &comment.Comment{
		ID:        uuid.New(),
		Content:   content,
		Timestamp: time.Now(),
		UserID:    actorID,
		RecipeID:  recipeID,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	dto := c.ToDTO()
	return &dto, nil
}

func (s *commentService) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]comment.CommentDTO, error) {
	comments, err := s.repo.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	return comment.ToDTOs(comments), nil
}

// Delete removes a comment. Only the author may delete it; a repeat delete
// of the same id reports ErrCommentNotFound.
func (s *commentService) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanMutate(actorID, c.UserID) {
		return comment.ErrNotAuthor
	}

	return s.repo.Delete(ctx, id)
}
