package entity

import (
	"time"

	"github.com/google/uuid"
)

// Service is a bookable listing published by a provider.
type Service struct {
	ID                 uuid.UUID `json:"_id"`
	ServiceName        string    `json:"serviceName"`
	ServiceImage       string    `json:"serviceImage"`
	UserName           string    `json:"userName"`
	UserEmail          string    `json:"userEmail"` // Owner of the listing.
	UserPhoto          string    `json:"userPhoto"`
	Price              Price     `json:"price"`
	Area               string    `json:"area"`
	ServiceDescription string    `json:"serviceDescription"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
