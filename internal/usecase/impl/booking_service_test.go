package impl

import (
	"context"
	"testing"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	mockRepo "servicehub/internal/mocks/repository"
	"servicehub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults status to pending", func(t *testing.T) {
		repo := mockRepo.NewMockBookingRepository(t)
		srv := NewBookingService(repo, newTestLogger())

		var stored *entity.Booking
		repo.EXPECT().
			CreateBooking(ctx, mock.AnythingOfType("*entity.Booking")).
			Run(func(_ context.Context, booking *entity.Booking) { stored = booking }).
			Return(nil)

		result, err := srv.CreateBooking(ctx, nil, &usecase.BookingInput{ServiceName: "Garden cleanup", UserEmail: "c@x.com"})

		require.NoError(t, err)
		assert.True(t, result.Acknowledged)
		assert.Equal(t, stored.ID, result.InsertedID)
		assert.Equal(t, entity.BookingStatusPending, stored.Status)
	})

	t.Run("keeps an explicit status", func(t *testing.T) {
		repo := mockRepo.NewMockBookingRepository(t)
		srv := NewBookingService(repo, newTestLogger())

		repo.EXPECT().
			CreateBooking(ctx, mock.MatchedBy(func(b *entity.Booking) bool { return b.Status == "working" })).
			Return(nil)

		_, err := srv.CreateBooking(ctx, nil, &usecase.BookingInput{Status: "working"})

		require.NoError(t, err)
	})

	t.Run("guarded customer must be the actor", func(t *testing.T) {
		repo := mockRepo.NewMockBookingRepository(t)
		srv := NewBookingService(repo, newTestLogger())

		_, err := srv.CreateBooking(ctx, newTestIdentity("a@x.com"), &usecase.BookingInput{UserEmail: "b@x.com"})

		assert.ErrorIs(t, err, domainerrors.ErrForbiddenAccess)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := mockRepo.NewMockBookingRepository(t)
		srv := NewBookingService(repo, newTestLogger())
		dbErr := domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "failed to create booking")

		repo.EXPECT().CreateBooking(ctx, mock.Anything).Return(dbErr)

		result, err := srv.CreateBooking(ctx, nil, &usecase.BookingInput{})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestBookingService_ListOwnerBookings(t *testing.T) {
	repo := mockRepo.NewMockBookingRepository(t)
	srv := NewBookingService(repo, newTestLogger())
	ctx := context.Background()
	bookings := []*entity.Booking{{UserEmail: "a@x.com"}}

	repo.EXPECT().FindBookingsByOwner(ctx, "a@x.com").Return(bookings, nil)

	got, err := srv.ListOwnerBookings(ctx, "a@x.com")

	require.NoError(t, err)
	assert.Equal(t, bookings, got)
}
