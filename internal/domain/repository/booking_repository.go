package repository

import (
	"context"

	"servicehub/internal/domain/entity"
)

// BookingRepository defines the interface for booking database operations.
type BookingRepository interface {
	// CreateBooking persists a new booking.
	CreateBooking(ctx context.Context, booking *entity.Booking) error

	// FindBookingsByOwner retrieves the bookings made by the customer ownerEmail.
	FindBookingsByOwner(ctx context.Context, ownerEmail string) ([]*entity.Booking, error)
}
