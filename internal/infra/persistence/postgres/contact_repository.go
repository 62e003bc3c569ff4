package postgres

import (
	"context"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

func (repo *contactRepository) CreateContact(ctx context.Context, contact *entity.Contact) error {
	contactM := &model.ContactModel{
		ID:        contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Subject:   contact.Subject,
		Message:   contact.Message,
		CreatedAt: contact.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRecord
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact message")
	}

	contact.CreatedAt = contactM.CreatedAt

	return nil
}
