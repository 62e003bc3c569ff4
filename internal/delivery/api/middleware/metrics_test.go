package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "servicehub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware_CountsByRouteAndStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsMiddleware(reg)

	e := echo.New()
	e.Use(m.Handle)
	e.GET("/services/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return domainerrors.ErrServiceNotFound
		}

		return c.NoContent(http.StatusOK)
	})

	for _, path := range []string{"/services/1", "/services/2", "/services/missing"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	e.GET("/metrics", MetricsHandler(reg))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Contains(t, body, `servicehub_http_requests_total{method="GET",route="/services/:id",status="200"} 2`)
	assert.Contains(t, body, `servicehub_http_requests_total{method="GET",route="/services/:id",status="404"} 1`)
}

func TestMetricsHandler_ServesExposition(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsMiddleware(reg)
	m.requests.WithLabelValues(http.MethodGet, "/", "200").Inc()

	e := echo.New()
	e.GET("/metrics", MetricsHandler(reg))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "servicehub_http_requests_total"))
}
