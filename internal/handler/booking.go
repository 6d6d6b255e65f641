package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"freight/internal/domain"
	redisstore "freight/internal/redis"
	"freight/internal/service"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	bookingService *service.BookingService
	cache          *redisstore.CacheStore // nil when Redis is disabled
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService, cache *redisstore.CacheStore) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		cache:          cache,
	}
}

// CreateBookingRequest is the HTTP request body for creating a booking.
type CreateBookingRequest struct {
	RateID        string `json:"rate_id"`
	DepartureDate string `json:"departure_date"`
	Status        string `json:"status,omitempty"` // pending, confirmed, canceled
}

// BookingResponse is the HTTP representation of a booking.
type BookingResponse struct {
	ID            string `json:"id"`
	RateID        string `json:"rate_id"`
	BookingDate   string `json:"booking_date"`
	DepartureDate string `json:"departure_date"`
	Status        string `json:"status"`
	Reference     string `json:"reference"`
}

// BookingWithRateResponse pairs a booking with its resolved rate.
type BookingWithRateResponse struct {
	Booking BookingResponse `json:"booking"`
	Rate    RateResponse    `json:"rate"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		RateID:        b.RateID,
		BookingDate:   b.BookingDate,
		DepartureDate: b.DepartureDate,
		Status:        string(b.Status),
		Reference:     b.Reference,
	}
}

// CreateBooking handles POST /v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), service.CreateBookingRequest{
		RateID:        req.RateID,
		DepartureDate: req.DepartureDate,
		Status:        domain.BookingStatus(req.Status),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if h.cache != nil {
		_ = h.cache.InvalidateBookingView(c.Request.Context())
	}

	c.JSON(http.StatusCreated, toBookingResponse(booking))
}

// ListBookings handles GET /v1/bookings
//
// Returns the booking+rate joined view: each booking paired with its
// resolved rate, with dangling rate references dropped.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		if body, err := h.cache.GetBookingView(ctx); err == nil && body != nil {
			c.Data(http.StatusOK, "application/json", body)
			return
		}
	}

	joined, err := h.bookingService.ListBookingsWithRates(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]BookingWithRateResponse, 0, len(joined))
	for _, j := range joined {
		response = append(response, BookingWithRateResponse{
			Booking: toBookingResponse(j.Booking),
			Rate:    toRateResponse(j.Rate),
		})
	}

	if h.cache != nil {
		if body, err := json.Marshal(response); err == nil {
			_ = h.cache.SetBookingView(ctx, body)
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetBooking handles GET /v1/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(booking))
}
