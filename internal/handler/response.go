package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"freight/internal/repository"
	"freight/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidRateID),
		errors.Is(err, service.ErrInvalidBookingID),
		errors.Is(err, service.ErrMissingDepartureDate),
		errors.Is(err, service.ErrInvalidDepartureDate),
		errors.Is(err, service.ErrInvalidMode),
		errors.Is(err, service.ErrInvalidRateType),
		errors.Is(err, service.ErrInvalidBookingStatus):
		return http.StatusBadRequest

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
