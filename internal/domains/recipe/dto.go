package recipe

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateRecipeRequest carries the submitted recipe fields. The image arrives
// separately as a multipart file and is handled by the service.
type CreateRecipeRequest struct {
	Title        string  `form:"title" json:"title"`
	Category     string  `form:"category" json:"category"`
	Description  *string `form:"description" json:"description,omitempty"`
	PrepTime     string  `form:"prep_time" json:"prep_time"`
	Ingredients  string  `form:"ingredients" json:"ingredients"`
	Instructions string  `form:"instructions" json:"instructions"`
}

func (r CreateRecipeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Category, validation.Required.Error("category is required")),
		validation.Field(&r.PrepTime,
			validation.Required.Error("prep_time is required"),
			validation.Length(1, 20),
		),
		validation.Field(&r.Ingredients, validation.Required.Error("ingredients are required")),
		validation.Field(&r.Instructions, validation.Required.Error("instructions are required")),
	)
}

// ValidateCategory checks the category against the configured allow-list.
// The list is configuration, so the check lives outside the static Validate.
func (r CreateRecipeRequest) ValidateCategory(allowed []string) error {
	in := make([]interface{}, len(allowed))
	for i, c := range allowed {
		in[i] = c
	}
	return validation.Validate(r.Category,
		validation.In(in...).Error("category is not in the configured list"))
}

// UpdateRecipeRequest replaces all mutable fields of a recipe. A missing
// image file means "keep the current image".
type UpdateRecipeRequest = CreateRecipeRequest

// ImageUpload is the raw uploaded file as the boundary hands it over.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// RecipeDTO is the public recipe representation.
type RecipeDTO struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Description  *string   `json:"description,omitempty"`
	PrepTime     string    `json:"prep_time"`
	Ingredients  string    `json:"ingredients"`
	Instructions string    `json:"instructions"`
	Image        *string   `json:"image,omitempty"`
	UserID       uuid.UUID `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (r *Recipe) ToDTO() RecipeDTO {
	return RecipeDTO{
		ID:           r.ID,
		Title:        r.Title,
		Category:     r.Category,
		Description:  r.Description,
		PrepTime:     r.PrepTime,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Image:        r.Image,
		UserID:       r.UserID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ToDTOs converts a slice, preserving store order.
func ToDTOs(recipes []Recipe) []RecipeDTO {
	dtos := make([]RecipeDTO, 0, len(recipes))
	for i := range recipes {
		dtos = append(dtos, recipes[i].ToDTO())
	}
	return dtos
}
