package comment

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")

	// ErrEmptyContent rejects blank or whitespace-only submissions before
	// anything reaches the store.
	ErrEmptyContent = errors.New("comment content must not be empty")

	// ErrNotAuthor is returned when someone other than the comment's author
	// tries to delete it.
	ErrNotAuthor = errors.New("only the author may delete this comment")

	// ErrRecipeNotFound surfaces a comment aimed at a recipe that does not
	// exist.
	ErrRecipeNotFound = errors.New("recipe not found")
)
