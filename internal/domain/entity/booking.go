package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatusPending is assigned to bookings created without a status.
const BookingStatusPending = "pending"

// Booking records a customer's reservation of a service.
type Booking struct {
	ID            uuid.UUID `json:"_id"`
	ServiceID     string    `json:"serviceId"`
	ServiceName   string    `json:"serviceName"`
	ServiceImage  string    `json:"serviceImage"`
	ProviderName  string    `json:"providerName"`
	ProviderEmail string    `json:"providerEmail"`
	UserName      string    `json:"userName"`
	UserEmail     string    `json:"userEmail"` // The customer who booked; owner of the record.
	Date          string    `json:"date"`
	Instruction   string    `json:"instruction"`
	Price         Price     `json:"price"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
