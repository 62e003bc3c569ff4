package handler

import (
	"net/http"
	"testing"

	"servicehub/internal/domain/entity"
	mockUsecase "servicehub/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBookingHandler(t *testing.T) {
	bookingUC := mockUsecase.NewMockBookingUsecase(t)
	h := NewBookingHandler(BookingHandlerParams{BookingUC: bookingUC, Logger: newTestLogger()})

	e := newTestEcho()
	e.POST("/book", h.CreateBooking)
	e.GET("/book/:email", h.ListOwnerBookings)

	insertedID := uuid.New()
	bookingUC.EXPECT().
		CreateBooking(mock.Anything, (*entity.Identity)(nil), mock.AnythingOfType("*usecase.BookingInput")).
		Return(&entity.InsertResult{Acknowledged: true, InsertedID: insertedID}, nil)
	bookingUC.EXPECT().
		ListOwnerBookings(mock.Anything, "c@x.com").
		Return([]*entity.Booking{{UserEmail: "c@x.com", Status: entity.BookingStatusPending}}, nil)

	rec := serve(e, http.MethodPost, "/book", `{"serviceName":"Plumbing","userEmail":"c@x.com","price":30}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), insertedID.String())

	rec = serve(e, http.MethodGet, "/book/c@x.com", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"pending"`)
}
