package booking

import (
	bookingRepo "github.com/ManasaGone/BookingService/database/repository/booking"

	"github.com/ManasaGone/BookingService/clients"
	"github.com/ManasaGone/BookingService/models"
)

// BookingService defines the booking workflow operations exposed to the HTTP layer.
type BookingService interface {
	CreateBooking(booking *models.Booking) (*models.Booking, error)
	GetBookingByID(bookingID int64) (*models.Booking, error)
	CancelBooking(bookingID int64) error
	ViewAllBookings() ([]models.BookingDTO, error)
	GetAllVehicles() ([]models.Vehicle, error)
	GetAllRoutes() ([]models.Route, error)
	GetBookingsByCustomerID(customerID int) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Vehicles clients.VehicleDirectory
	Routes   clients.RouteDirectory
}
