package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/comment"
	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/shared/middleware"
	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/shared/response"
)

type CommentHandler struct {
	commentService comment.Service
}

func NewCommentHandler(commentService comment.Service) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Add posts a comment on a recipe.
// POST /api/v1/recipes/:id/comments
func (h *CommentHandler) Add(c *gin.Context) {
	actorID, ok := middleware.ActingUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid recipe id")
		return
	}

	var req comment.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.commentService.Add(c.Request.Context(), recipeID, actorID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, comment.ErrEmptyContent):
			response.BadRequest(c, "comment content must not be empty")
		case errors.Is(err, comment.ErrRecipeNotFound):
			response.NotFound(c, "recipe not found")
		default:
			response.InternalServerError(c, "failed to add comment")
		}
		return
	}

	response.Success(c, http.StatusCreated, dto)
}

// ListByRecipe returns a recipe's comments in insertion order.
// GET /api/v1/recipes/:id/comments
func (h *CommentHandler) ListByRecipe(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid recipe id")
		return
	}

	dtos, err := h.commentService.ListByRecipe(c.Request.Context(), recipeID)
	if err != nil {
		response.InternalServerError(c, "failed to list comments")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, dtos, &response.Meta{Total: len(dtos)})
}

// Delete removes the acting user's own comment.
// DELETE /api/v1/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	actorID, ok := middleware.ActingUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), commentID, actorID); err != nil {
		switch {
		case errors.Is(err, comment.ErrCommentNotFound):
			response.NotFound(c, "comment not found")
		case errors.Is(err, comment.ErrNotAuthor):
			response.Forbidden(c, "only the author may delete this comment")
		default:
			response.InternalServerError(c, "failed to delete comment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
