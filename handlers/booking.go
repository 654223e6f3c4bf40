package handlers

import (
	"net/http"
	"strconv"

	"frontdesk/services/booking"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes read access to confirmed reservations.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ListBookingsHandler returns recent bookings, newest first. An optional
// "date" query filters to a single day; "limit" caps the unfiltered list.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	if date := c.Query("date"); date != "" {
		bookings, err := h.Service.BookingsForDate(c.Request.Context(), date)
		if err != nil {
			logger.Error("Failed to fetch bookings for date", zap.String("date", date), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
		return
	}

	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid limit", "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	bookings, err := h.Service.ListBookings(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBookingHandler removes a booking by id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	if err := h.Service.CancelBooking(c.Request.Context(), id); err != nil {
		logger.Error("Failed to cancel booking", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": "cancelled"})
}

// GetBookingHandler returns a single booking by id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	id := c.Param("id")
	bk, err := h.Service.GetBooking(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to fetch booking", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, bk)
}
