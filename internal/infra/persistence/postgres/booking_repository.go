package postgres

import (
	"context"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// bookingRepository implements the repository.BookingRepository interface.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{
		db: db,
	}
}

// CreateBooking persists a new booking.
func (repo *bookingRepository) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRecord
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.CreatedAt = bookingM.CreatedAt

	return nil
}

// FindBookingsByOwner retrieves the bookings made by ownerEmail, newest first.
func (repo *bookingRepository) FindBookingsByOwner(ctx context.Context, ownerEmail string) ([]*entity.Booking, error) {
	var bookingModels []*model.BookingModel

	if err := repo.db.WithContext(ctx).
		Where("user_email = ?", ownerEmail).
		Order("created_at DESC").
		Find(&bookingModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find bookings by owner")
	}

	bookings := make([]*entity.Booking, 0, len(bookingModels))
	for _, bookingM := range bookingModels {
		bookings = append(bookings, toBookingDomain(bookingM))
	}

	return bookings, nil
}

// --- Mapper Functions ---

func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	return &entity.Booking{
		ID:            data.ID,
		ServiceID:     data.ServiceID,
		ServiceName:   data.ServiceName,
		ServiceImage:  data.ServiceImage,
		ProviderName:  data.ProviderName,
		ProviderEmail: data.ProviderEmail,
		UserName:      data.UserName,
		UserEmail:     data.UserEmail,
		Date:          data.Date,
		Instruction:   data.Instruction,
		Price:         entity.Price(data.Price),
		Status:        data.Status,
		CreatedAt:     data.CreatedAt,
	}
}

func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	return &model.BookingModel{
		ID:            data.ID,
		ServiceID:     data.ServiceID,
		ServiceName:   data.ServiceName,
		ServiceImage:  data.ServiceImage,
		ProviderName:  data.ProviderName,
		ProviderEmail: data.ProviderEmail,
		UserName:      data.UserName,
		UserEmail:     data.UserEmail,
		Date:          data.Date,
		Instruction:   data.Instruction,
		Price:         float64(data.Price),
		Status:        data.Status,
		CreatedAt:     data.CreatedAt,
	}
}
