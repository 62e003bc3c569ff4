package handler

import (
	"net/http"

	"servicehub/internal/delivery/api/response"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	contactUC usecase.ContactUsecase
}

func NewContactHandler(contactUC usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{contactUC: contactUC}
}

func (h *ContactHandler) SubmitContact(c echo.Context) error {
	var input usecase.ContactInput
	if err := c.Bind(&input); err != nil {
		return response.FromAppError(c, domainerrors.ErrInvalidInput)
	}

	result, err := h.contactUC.SubmitContact(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
