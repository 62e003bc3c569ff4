package repository

import (
	"context"

	"servicehub/internal/domain/entity"
)

// ContactRepository defines the interface for contact message persistence.
type ContactRepository interface {
	// CreateContact persists a new contact message.
	CreateContact(ctx context.Context, contact *entity.Contact) error
}
