package service

import (
	"github.com/google/uuid"

	"github.com/temirov/blogapi/internal/model"
)

// authorizeOwner is the ownership rule shared by the resource services:
// only the owner of a record may mutate it. Callers must confirm the record
// exists first, so missing records always surface as not-found rather than
// leaking ownership.
func authorizeOwner(principal model.Principal, ownerID uuid.UUID) error {
	if principal.UserID != ownerID {
		return model.ErrAuthorizationDenied("you don't have access to this resource")
	}
	return nil
}
