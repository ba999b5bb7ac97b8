package comment

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// AddCommentRequest carries the submitted comment body. Whitespace-only
// content is rejected by the service, not just by shape validation.
type AddCommentRequest struct {
	Content string `json:"content"`
}

func (r AddCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, 2000),
		),
	)
}

// CommentDTO is the public comment representation.
type CommentDTO struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	UserID    uuid.UUID `json:"user_id"`
	RecipeID  uuid.UUID `json:"recipe_id"`
}

func (c *Comment) ToDTO() CommentDTO {
	return CommentDTO{
		ID:        c.ID,
		Content:   c.Content,
		Timestamp: c.Timestamp,
		UserID:    c.UserID,
		RecipeID:  c.RecipeID,
	}
}

func ToDTOs(comments []Comment) []CommentDTO {
	dtos := make([]CommentDTO, 0, len(comments))
	for i := range comments {
		dtos = append(dtos, comments[i].ToDTO())
	}
	return dtos
}
