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

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	bookingRepo repository.BookingRepository
	logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	logger *slog.Logger,
) usecase.BookingUsecase {
	return &bookingService{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBooking stores the booking, defaulting its status to pending.
func (srv *bookingService) CreateBooking(ctx context.Context, actor *entity.Identity, input *usecase.BookingInput) (*entity.InsertResult, error) {
	customer, err := usecase.ResolveOwner(actor, input.UserEmail)
	if err != nil {
		srv.log(ctx).Info("Booking create denied", slog.String("owner", input.UserEmail))

		return nil, err
	}

	status := input.Status
	if status == "" {
		status = entity.BookingStatusPending
	}

	booking := &entity.Booking{
		ID:            uuid.New(),
		ServiceID:     input.ServiceID,
		ServiceName:   input.ServiceName,
		ServiceImage:  input.ServiceImage,
		ProviderName:  input.ProviderName,
		ProviderEmail: input.ProviderEmail,
		UserName:      input.UserName,
		UserEmail:     customer,
		Date:          input.Date,
		Instruction:   input.Instruction,
		Price:         input.Price,
		Status:        status,
	}

	if err := srv.bookingRepo.CreateBooking(ctx, booking); err != nil {
		srv.log(ctx).Error("Failed to create booking", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create booking")
	}

	srv.log(ctx).Info("Booking created", slog.String("booking_id", booking.ID.String()))

	return &entity.InsertResult{Acknowledged: true, InsertedID: booking.ID}, nil
}

func (srv *bookingService) ListOwnerBookings(ctx context.Context, ownerEmail string) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.FindBookingsByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owner bookings")
	}

	return bookings, nil
}
