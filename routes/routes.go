package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ManasaGone/BookingService/handlers"
	"github.com/ManasaGone/BookingService/utils"
)

// RegisterBookingRoutes registers all endpoints for the booking workflow.
// The paths mirror the directory services' casing, ViewAllVehicles included.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("/addBooking", h.CreateBooking)
		bookings.GET("/viewBooking/:bookingId", h.GetBookingByID)
		bookings.GET("/viewAllBookings", h.ViewAllBookings)
		bookings.DELETE("/deleteBooking/:bookingId", h.CancelBooking)
		bookings.GET("/ViewAllVehicles", h.GetAllVehicles)
		bookings.GET("/ViewAllRoutes", h.GetAllRoutes)
		bookings.GET("/customer/:customerId", h.GetBookingsByCustomerID)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, h)
}
