// Package handler contains the echo handlers of the API delivery.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root answers the liveness probe the web client has always used.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "Server Side is Running")
}

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
