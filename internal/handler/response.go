package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/veridia/user-provisioning/api/internal/status"
)

// APIResponse is the envelope for auxiliary endpoints (login, health).
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// failureBody is the envelope for classified failures. Callers branch on the
// kind; the message is for humans.
type failureBody struct {
	Success bool          `json:"success"`
	Error   *status.Error `json:"error"`
}

// Success sends a successful response using the shared envelope format.
func Success(c echo.Context, code int, message string, data any) error {
	if code == 0 {
		code = http.StatusOK
	}
	payload := APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}
	return c.JSON(code, payload)
}

// Error sends a plain error response using the shared envelope format.
func Error(c echo.Context, code int, message string) error {
	if code == 0 {
		code = http.StatusInternalServerError
	}
	payload := APIResponse{
		Status:  "error",
		Message: message,
	}
	return c.JSON(code, payload)
}

// Fail sends a classified error, mapping its kind to an HTTP status.
func Fail(c echo.Context, serr *status.Error) error {
	if serr == nil {
		serr = status.New(status.Internal, "unexpected failure")
	}
	return c.JSON(serr.HTTPStatus(), failureBody{Error: serr})
}
