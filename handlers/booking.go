package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ManasaGone/BookingService/models"
	"github.com/ManasaGone/BookingService/services/booking"
)

// BookingHandler exposes the booking workflow over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// respondError maps service errors to HTTP responses: NotFound to 404,
// InvalidInput to 400, anything else to 500 untranslated.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var notFound booking.NotFoundError
	var invalid booking.InvalidInputError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound.Message})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Message})
	default:
		h.Logger.Error("Booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// CreateBooking handles POST /bookings/addBooking.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var draft models.Booking
	if err := c.ShouldBindJSON(&draft); err != nil {
		h.Logger.Error("Invalid booking payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	saved, err := h.Service.CreateBooking(&draft)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetBookingByID handles GET /bookings/viewBooking/:bookingId.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	b, err := h.Service.GetBookingByID(bookingID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ViewAllBookings handles GET /bookings/viewAllBookings.
func (h *BookingHandler) ViewAllBookings(c *gin.Context) {
	dtos, err := h.Service.ViewAllBookings()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos)
}

// CancelBooking handles DELETE /bookings/deleteBooking/:bookingId.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	if err := h.Service.CancelBooking(bookingID); err != nil {
		h.respondError(c, err)
		return
	}
	c.String(http.StatusOK, "Booking cancelled successfully")
}

// GetAllVehicles handles GET /bookings/ViewAllVehicles.
func (h *BookingHandler) GetAllVehicles(c *gin.Context) {
	vehicles, err := h.Service.GetAllVehicles()
	if err != nil {
		h.respondError(c, err)
		return
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	c.JSON(http.StatusOK, vehicles)
}

// GetAllRoutes handles GET /bookings/ViewAllRoutes.
func (h *BookingHandler) GetAllRoutes(c *gin.Context) {
	routes, err := h.Service.GetAllRoutes()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

// GetBookingsByCustomerID handles GET /bookings/customer/:customerId.
func (h *BookingHandler) GetBookingsByCustomerID(c *gin.Context) {
	customerID, err := strconv.Atoi(c.Param("customerId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	bookings, err := h.Service.GetBookingsByCustomerID(customerID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}
