package serviceutils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/employee_salary_api/internal/domain"
	"github.com/locvowork/employee_salary_api/internal/logger"
)

// Error codes returned in the "code" field of error bodies.
const (
	CodeNotFound       = "not_found"
	CodeNoDataForMonth = "no_data_for_month"
	CodeInvalidRequest = "invalid_request"
	CodeInternal       = "internal"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// MessageResponse is the JSON body of requests that only confirm success.
type MessageResponse struct {
	Message string `json:"message"`
}

// ResponseSuccess writes data as the JSON body.
func ResponseSuccess(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, data)
}

// ResponseMessage writes {"message": message}.
func ResponseMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, MessageResponse{Message: message})
}

// ResponseError writes an error body. Server errors are logged with err; the
// client only sees message.
func ResponseError(c echo.Context, status int, code, message string, err error) error {
	if status >= http.StatusInternalServerError && err != nil {
		logger.ErrorLog(c.Request().Context(), message, err)
	}
	return c.JSON(status, ErrorResponse{Code: code, Error: message})
}

// ResponseFromError maps the domain error kinds onto status codes.
// Anything unrecognised becomes a 500 with fallback as its message.
func ResponseFromError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrNoDataForMonth):
		return ResponseError(c, http.StatusNotFound, CodeNoDataForMonth, err.Error(), err)
	case errors.Is(err, domain.ErrNotFound):
		return ResponseError(c, http.StatusNotFound, CodeNotFound, "Employee not found", err)
	case errors.Is(err, domain.ErrInvalidRequest):
		return ResponseError(c, http.StatusBadRequest, CodeInvalidRequest, err.Error(), err)
	default:
		return ResponseError(c, http.StatusInternalServerError, CodeInternal, fallback, err)
	}
}
