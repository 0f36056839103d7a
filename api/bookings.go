package api

import (
	"net/http"

	"github.com/Domenick1991/seatbook/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookSeatRequest struct {
	PassengerName string `json:"passenger_name" binding:"required"`
}

// bookingResponse reports the outcome. Success false is a normal answer
// (full flight, duplicate passenger, unknown flight or booking), not an error.
type bookingResponse struct {
	FlightID      string `json:"flight_id"`
	PassengerName string `json:"passenger_name"`
	Success       bool   `json:"success"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

// Register mounts under /flights/:id.
func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/bookings", h.book)
	router.DELETE("/bookings/:passenger", h.cancel)
}

func (h *BookingHandler) book(c *gin.Context) {
	var req bookSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flightID := c.Param("id")
	ok, err := h.service.BookFlight(c.Request.Context(), flightID, req.PassengerName)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookingResponse{
		FlightID:      flightID,
		PassengerName: req.PassengerName,
		Success:       ok,
	})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	flightID := c.Param("id")
	passenger := c.Param("passenger")

	ok, err := h.service.CancelBooking(c.Request.Context(), flightID, passenger)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookingResponse{
		FlightID:      flightID,
		PassengerName: passenger,
		Success:       ok,
	})
}
