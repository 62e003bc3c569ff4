package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "servicehub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "app error",
			err:        errors.Wrap(domainerrors.ErrForbiddenAccess, "owner check"),
			wantStatus: http.StatusForbidden,
			wantBody:   `{"message":"Forbidden Access"}`,
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   `{"message":"Request Entity Too Large"}`,
		},
		{
			name:       "echo error without text",
			err:        &echo.HTTPError{Code: http.StatusMethodNotAllowed},
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   `{"message":"Method Not Allowed"}`,
		},
		{
			name:       "unknown error",
			err:        errors.New("db exploded"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Internal server error, please try again later"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
