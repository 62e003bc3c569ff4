package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"servicehub/config"
	"servicehub/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.CookieName = "token"
	cfg.Auth.CookieSecure = true
	cfg.Auth.CookieSameSite = "none"
	cfg.Listing.DefaultLimit = 4

	return cfg
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

// serve runs one request through e and returns the recorder.
func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}
