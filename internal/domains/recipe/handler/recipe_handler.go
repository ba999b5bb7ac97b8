package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/comment"
	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/domains/recipe"
	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/shared/middleware"
	"github.com/ViktoriaKonoplyanik/recipe-manager/internal/shared/response"
)

type RecipeHandler struct {
	recipeService  recipe.Service
	commentService comment.Service
}

func NewRecipeHandler(recipeService recipe.Service, commentService comment.Service) *RecipeHandler {
	return &RecipeHandler{
		recipeService:  recipeService,
		commentService: commentService,
	}
}

// recipeDetail is the recipe together with its comments, the shape the
// detail page consumes.
type recipeDetail struct {
	recipe.RecipeDTO
	Comments []comment.CommentDTO `json:"comments"`
}

// Create publishes a new recipe for the authenticated user.
// POST /api/v1/recipes (multipart/form-data, optional "image" file)
func (h *RecipeHandler) Create(c *gin.Context) {
	actorID, ok := middleware.ActingUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	var req recipe.CreateRecipeRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe", err)
		return
	}

	image, err := readImageFile(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.recipeService.Create(c.Request.Context(), actorID, req, image)
	if err != nil {
		h.respondRecipeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, dto)
}

// GetByID returns a recipe with its comments.
// GET /api/v1/recipes/:id
func (h *RecipeHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid recipe id")
		return
	}

	dto, err := h.recipeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondRecipeError(c, err)
		return
	}

	comments, err := h.commentService.ListByRecipe(c.Request.Context(), id)
	if err != nil {
		response.InternalServerError(c, "failed to load comments")
		return
	}

	response.Success(c, http.StatusOK, recipeDetail{RecipeDTO: *dto, Comments: comments})
}

// List returns all recipes, optionally filtered by exact category.
// GET /api/v1/recipes?category=Dessert
func (h *RecipeHandler) List(c *gin.Context) {
	dtos, err := h.recipeService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.InternalServerError(c, "failed to list recipes")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, dtos, &response.Meta{Total: len(dtos)})
}

// Search performs a keyword search; a blank query yields an empty result.
// GET /api/v1/recipes/search?query=cake
func (h *RecipeHandler) Search(c *gin.Context) {
	dtos, err := h.recipeService.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		response.InternalServerError(c, "failed to search recipes")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, dtos, &response.Meta{Total: len(dtos)})
}

// Categories returns the distinct categories present plus the configured
// allow-list for the submission form.
// GET /api/v1/recipes/categories
func (h *RecipeHandler) Categories(c *gin.Context) {
	present, err := h.recipeService.Categories(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "failed to list categories")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"allowed": h.recipeService.AllowedCategories(),
		"present": present,
	})
}

// Update replaces the recipe's fields; owner only. The image changes only if
// a new file was attached.
// PUT /api/v1/recipes/:id (multipart/form-data)
func (h *RecipeHandler) Update(c *gin.Context) {
	actorID, ok := middleware.ActingUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid recipe id")
		return
	}

	var req recipe.UpdateRecipeRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid recipe", err)
		return
	}

	image, err := readImageFile(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.recipeService.Update(c.Request.Context(), id, actorID, req, image)
	if err != nil {
		h.respondRecipeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// Delete removes the recipe and its comments; owner only.
// DELETE /api/v1/recipes/:id
func (h *RecipeHandler) Delete(c *gin.Context) {
	actorID, ok := middleware.ActingUserID(c)
	if !ok {
		response.Unauthorized(c, "not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid recipe id")
		return
	}

	if err := h.recipeService.Delete(c.Request.Context(), id, actorID); err != nil {
		h.respondRecipeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *RecipeHandler) respondRecipeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, recipe.ErrRecipeNotFound):
		response.NotFound(c, "recipe not found")
	case errors.Is(err, recipe.ErrNotOwner):
		response.Forbidden(c, "only the owner may modify this recipe")
	case errors.Is(err, recipe.ErrOwnerNotFound):
		response.BadRequest(c, "owning user does not exist")
	case errors.Is(err, recipe.ErrInvalidImage):
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "recipe operation failed")
	}
}

// readImageFile pulls the optional "image" multipart file into memory.
// A request without one returns (nil, nil).
func readImageFile(c *gin.Context) (*recipe.ImageUpload, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	data, err := readAll(fileHeader)
	if err != nil {
		return nil, err
	}

	return &recipe.ImageUpload{
		Filename: fileHeader.Filename,
		Data:     data,
	}, nil
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
