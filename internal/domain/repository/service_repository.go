// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for persistence.
var (
	// ErrServiceNotFound is returned when a service listing is not found.
	ErrServiceNotFound = errors.New("service not found")
	// ErrDuplicateRecord is returned when an insert collides with an existing primary key.
	ErrDuplicateRecord = errors.New("record already exists")
)

// ServiceRepository defines the interface for service listing database operations.
type ServiceRepository interface {
	// ListServices returns listings in insertion order. A limit of zero or less means no limit.
	ListServices(ctx context.Context, limit int) ([]*entity.Service, error)

	// FindServiceByID retrieves a listing by its unique ID.
	FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// LockServiceByID is FindServiceByID that also holds a row lock until the
	// surrounding transaction ends. Outside a transaction the lock is released at once.
	LockServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// FindServicesByOwner retrieves every listing whose userEmail equals ownerEmail.
	FindServicesByOwner(ctx context.Context, ownerEmail string) ([]*entity.Service, error)

	// CreateService persists a new listing.
	CreateService(ctx context.Context, service *entity.Service) error

	// UpsertService overwrites the editable fields of the listing with service.ID,
	// inserting it when absent. It reports whether a new row was inserted.
	UpsertService(ctx context.Context, service *entity.Service) (inserted bool, err error)

	// DeleteService removes a listing and returns the number of rows deleted.
	DeleteService(ctx context.Context, id uuid.UUID) (int64, error)
}
