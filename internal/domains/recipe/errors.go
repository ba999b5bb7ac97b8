package recipe

import "errors"

var (
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrNotOwner is returned when the acting user tries to mutate a recipe
	// they do not own. The recipe is left untouched.
	ErrNotOwner = errors.New("only the owner may modify this recipe")

	// ErrOwnerNotFound surfaces a foreign-key violation on user_id: recipes
	// can only be created for users that exist.
	ErrOwnerNotFound = errors.New("owning user does not exist")

	ErrInvalidImage = errors.New("invalid image upload")
)
