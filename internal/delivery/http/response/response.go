// Package response renders the fragment API's JSON envelopes.
package response

import (
	"net/http"

	domainerrors "fragments/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// ErrorInfo is the "error" member of a failed response.
type ErrorInfo struct {
	Code    int    `json:"code"`    // HTTP status code
	Message string `json:"message"` // User-friendly message
}

// ErrorBody is the body of every failed response.
type ErrorBody struct {
	Status string    `json:"status"`
	Error  ErrorInfo `json:"error"`
}

// Success writes {"status":"ok"} merged with fields.
func Success(c echo.Context, statusCode int, fields map[string]any) error {
	body := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["status"] = statusOK

	return c.JSON(statusCode, body)
}

// Error writes the error envelope.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{
		Status: statusError,
		Error: ErrorInfo{
			Code:    statusCode,
			Message: message,
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// NotFound 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}

// HandleAppError renders an AppError with its own status, and anything else as a 500
// through echo's error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		message := appErr.Message()
		if details := appErr.Details(); details != "" {
			message += ": " + details
		}

		return Error(c, appErr.HTTPCode(), message)
	}

	return err
}
