package bookingRepo

import (
	"github.com/ManasaGone/BookingService/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Save inserts the booking when it has no ID yet, assigning one from the
	// store, and otherwise overwrites the record at that ID field-for-field.
	Save(booking *models.Booking) (*models.Booking, error)
	// GetByID retrieves a booking by its unique ID. Returns nil when absent.
	GetByID(id int64) (*models.Booking, error)
	// GetAll retrieves all bookings. Order is not guaranteed.
	GetAll() ([]models.Booking, error)
	// GetByCustomerID retrieves all bookings made by a customer.
	GetByCustomerID(customerID int) ([]models.Booking, error)
	// GetByVehicleNo retrieves all bookings for a vehicle number.
	GetByVehicleNo(vehicleNo string) ([]models.Booking, error)
}
