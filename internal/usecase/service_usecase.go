package usecase

import (
	"context"

	"servicehub/internal/domain/entity"

	"github.com/google/uuid"
)

// ServiceInput carries the editable fields of a service listing.
type ServiceInput struct {
	ServiceName        string       `json:"serviceName"`
	ServiceImage       string       `json:"serviceImage"`
	UserName           string       `json:"userName"`
	UserEmail          string       `json:"userEmail"`
	UserPhoto          string       `json:"userPhoto"`
	Price              entity.Price `json:"price"`
	Area               string       `json:"area"`
	ServiceDescription string       `json:"serviceDescription"`
}

// ServiceUsecase defines the service listing use cases.
//
// Mutations take the caller's verified identity as actor. A nil actor means the
// route is not guarded and ownership is not checked.
type ServiceUsecase interface {
	// ListServices returns up to limit listings; limit <= 0 returns all.
	ListServices(ctx context.Context, limit int) ([]*entity.Service, error)

	// GetService returns one listing or ErrServiceNotFound.
	GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// ListOwnerServices returns the listings published by ownerEmail.
	ListOwnerServices(ctx context.Context, ownerEmail string) ([]*entity.Service, error)

	// CreateService inserts a new listing.
	CreateService(ctx context.Context, actor *entity.Identity, input *ServiceInput) (*entity.InsertResult, error)

	// UpdateService overwrites the listing, inserting it when id is unknown.
	UpdateService(ctx context.Context, actor *entity.Identity, id uuid.UUID, input *ServiceInput) (*entity.UpdateResult, error)

	// DeleteService removes the listing. Deleting an unknown id is not an error.
	DeleteService(ctx context.Context, actor *entity.Identity, id uuid.UUID) (*entity.DeleteResult, error)
}
