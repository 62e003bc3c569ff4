package usecase

import (
	"context"

	"servicehub/internal/domain/entity"
)

// ContactInput is a message from the public contact form.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactUsecase defines the contact form use case.
type ContactUsecase interface {
	SubmitContact(ctx context.Context, input *ContactInput) (*entity.InsertResult, error)
}
