// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns overwritten by UpsertService. The owner is included: an update
// replaces the whole editable record.
var serviceEditableColumns = []string{
	"service_name",
	"service_image",
	"user_name",
	"user_email",
	"user_photo",
	"price",
	"area",
	"service_description",
	"updated_at",
}

// serviceRepository implements the repository.ServiceRepository interface.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{
		db: db,
	}
}

// ListServices returns listings oldest first. limit <= 0 returns all of them.
func (repo *serviceRepository) ListServices(ctx context.Context, limit int) ([]*entity.Service, error) {
	var serviceModels []*model.ServiceModel

	query := repo.db.WithContext(ctx).Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&serviceModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list services")
	}

	return toServiceDomains(serviceModels), nil
}

// FindServiceByID retrieves a listing by its unique ID.
func (repo *serviceRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	return repo.findServiceByID(repo.db.WithContext(ctx), id)
}

// LockServiceByID reads the listing with SELECT ... FOR UPDATE.
func (repo *serviceRepository) LockServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	return repo.findServiceByID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *serviceRepository) findServiceByID(query *gorm.DB, id uuid.UUID) (*entity.Service, error) {
	var serviceM model.ServiceModel

	if err := query.
		Where("id = ?", id).
		First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find service by ID")
	}

	return toServiceDomain(&serviceM), nil
}

// FindServicesByOwner retrieves every listing published by ownerEmail.
func (repo *serviceRepository) FindServicesByOwner(ctx context.Context, ownerEmail string) ([]*entity.Service, error) {
	var serviceModels []*model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Where("user_email = ?", ownerEmail).
		Order("created_at ASC").
		Find(&serviceModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find services by owner")
	}

	return toServiceDomains(serviceModels), nil
}

// CreateService persists a new listing.
func (repo *serviceRepository) CreateService(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRecord
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	service.CreatedAt = serviceM.CreatedAt
	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

// UpsertService updates the listing in place, or inserts it when no row matched.
func (repo *serviceRepository) UpsertService(ctx context.Context, service *entity.Service) (bool, error) {
	serviceM := fromServiceDomain(service)

	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", serviceM.ID).
		Select(serviceEditableColumns).
		Updates(serviceM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service")
	}

	if result.RowsAffected > 0 {
		return false, nil
	}

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return false, repository.ErrDuplicateRecord
		}
		if isNotNullConstraintViolation(err) {
			return false, domainerrors.ErrInvalidInput.WrapMessage("missing required service information")
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to insert service")
	}

	service.CreatedAt = serviceM.CreatedAt
	service.UpdatedAt = serviceM.UpdatedAt

	return true, nil
}

// DeleteService removes a listing by its ID.
func (repo *serviceRepository) DeleteService(ctx context.Context, id uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ServiceModel{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toServiceDomains(data []*model.ServiceModel) []*entity.Service {
	services := make([]*entity.Service, 0, len(data))
	for _, serviceM := range data {
		services = append(services, toServiceDomain(serviceM))
	}

	return services
}

// toServiceDomain converts a GORM ServiceModel to a domain Service entity.
func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	return &entity.Service{
		ID:                 data.ID,
		ServiceName:        data.ServiceName,
		ServiceImage:       data.ServiceImage,
		UserName:           data.UserName,
		UserEmail:          data.UserEmail,
		UserPhoto:          data.UserPhoto,
		Price:              entity.Price(data.Price),
		Area:               data.Area,
		ServiceDescription: data.ServiceDescription,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromServiceDomain converts a domain Service entity to a GORM ServiceModel.
func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	if data == nil {
		return nil
	}

	return &model.ServiceModel{
		ID:                 data.ID,
		ServiceName:        data.ServiceName,
		ServiceImage:       data.ServiceImage,
		UserName:           data.UserName,
		UserEmail:          data.UserEmail,
		UserPhoto:          data.UserPhoto,
		Price:              float64(data.Price),
		Area:               data.Area,
		ServiceDescription: data.ServiceDescription,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
