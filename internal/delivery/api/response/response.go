// Package response writes the JSON bodies the web client expects: resources
// are returned as-is and every failure is a single {"message": ...} object.
package response

import (
	"net/http"

	domainerrors "servicehub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// SuccessFlag is returned by endpoints that only acknowledge an action.
type SuccessFlag struct {
	Success bool `json:"success"`
}

// Success writes data as the whole response body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK acknowledges an action with {"success": true}.
func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessFlag{Success: true})
}

// Error writes {"message": message} with statusCode.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{Message: message})
}

func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized writes the session guard's 401 body.
func Unauthorized(c echo.Context) error {
	return FromAppError(c, domainerrors.ErrUnauthorizedAccess)
}

// Forbidden writes the session guard's 403 body.
func Forbidden(c echo.Context) error {
	return FromAppError(c, domainerrors.ErrForbiddenAccess)
}

func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}

func InternalServerError(c echo.Context) error {
	return FromAppError(c, domainerrors.ErrInternalError)
}

// FromAppError renders appErr with its own status and message.
func FromAppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.Message())
}

// HandleAppError renders err when it carries an AppError and otherwise hands
// it back so the central error handler can log it.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return FromAppError(c, appErr)
	}

	return errors.WithStack(err)
}
