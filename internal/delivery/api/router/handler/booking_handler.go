package handler

import (
	"log/slog"
	"net/http"

	"servicehub/internal/delivery/api/response"
	deliverycontext "servicehub/internal/delivery/context"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
	Logger    *slog.Logger
}

type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC: params.BookingUC,
		logger:    params.Logger,
	}
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var input usecase.BookingInput
	if err := c.Bind(&input); err != nil {
		h.logger.Debug("Invalid booking payload", slog.Any("error", err))

		return response.FromAppError(c, domainerrors.ErrInvalidInput)
	}

	result, err := h.bookingUC.CreateBooking(c.Request().Context(), actorOf(c), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ListOwnerBookings returns the bookings of the path owner, who RequireOwner
// has already matched against the caller.
func (h *BookingHandler) ListOwnerBookings(c echo.Context) error {
	bookings, err := h.bookingUC.ListOwnerBookings(c.Request().Context(), deliverycontext.PathParam(c, "email"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bookings)
}
