package impl

import (
	"context"
	"log/slog"

	deliverycontext "servicehub/internal/delivery/context"
	"servicehub/internal/domain/entity"
	"servicehub/internal/domain/repository"
	"servicehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(contactRepo repository.ContactRepository, logger *slog.Logger) usecase.ContactUsecase {
	return &contactService{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

func (srv *contactService) SubmitContact(ctx context.Context, input *usecase.ContactInput) (*entity.InsertResult, error) {
	contact := &entity.Contact{
		ID:      uuid.New(),
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := srv.contactRepo.CreateContact(ctx, contact); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to store contact message", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to submit contact")
	}

	return &entity.InsertResult{Acknowledged: true, InsertedID: contact.ID}, nil
}
