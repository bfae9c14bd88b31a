package handler

import (
	"net/http"

	"fragments/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the store is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{"service": "fragments-stub"})
}
