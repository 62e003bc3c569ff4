package usecase

import (
	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
)

// AuthorizeOwner allows identity to act on records owned by owner.
// The comparison is exact string equality on the email claim.
func AuthorizeOwner(identity *entity.Identity, owner string) error {
	if identity == nil {
		return domainerrors.ErrUnauthorizedAccess
	}
	if !identity.Owns(owner) {
		return domainerrors.ErrForbiddenAccess
	}

	return nil
}

// ResolveOwner returns the owner a guarded write should record. An empty
// requested owner defaults to the actor. A nil actor leaves requested untouched.
func ResolveOwner(actor *entity.Identity, requested string) (string, error) {
	if actor == nil {
		return requested, nil
	}
	if requested == "" {
		requested = actor.Email
	}
	if err := AuthorizeOwner(actor, requested); err != nil {
		return "", err
	}

	return requested, nil
}
