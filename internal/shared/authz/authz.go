// Package authz holds the single authorization rule of the system: a recipe
// or comment may be mutated only by the user who owns it. There are no
// roles, scopes, or admin overrides.
package authz

import "github.com/google/uuid"

// CanMutate reports whether actor may update or delete a resource owned by
// owner. Pure predicate, no side effects.
func CanMutate(actorID, ownerID uuid.UUID) bool {
	return actorID == ownerID
}
