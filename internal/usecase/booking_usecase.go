package usecase

import (
	"context"

	"servicehub/internal/domain/entity"
)

// BookingInput carries a new booking as submitted by the customer.
type BookingInput struct {
	ServiceID     string       `json:"serviceId"`
	ServiceName   string       `json:"serviceName"`
	ServiceImage  string       `json:"serviceImage"`
	ProviderName  string       `json:"providerName"`
	ProviderEmail string       `json:"providerEmail"`
	UserName      string       `json:"userName"`
	UserEmail     string       `json:"userEmail"`
	Date          string       `json:"date"`
	Instruction   string       `json:"instruction"`
	Price         entity.Price `json:"price"`
	Status        string       `json:"status"`
}

// BookingUsecase defines the booking use cases.
type BookingUsecase interface {
	// CreateBooking records a booking. A non-nil actor must be the booking's customer.
	CreateBooking(ctx context.Context, actor *entity.Identity, input *BookingInput) (*entity.InsertResult, error)

	// ListOwnerBookings returns the bookings made by ownerEmail.
	ListOwnerBookings(ctx context.Context, ownerEmail string) ([]*entity.Booking, error)
}
