package booking

import (
	"fmt"
	"strconv"

	"github.com/ManasaGone/BookingService/models"
	"github.com/ManasaGone/BookingService/utils"
)

// ViewAllBookings loads every booking and projects each into a DTO. An empty
// store yields an empty list, not an error.
func (s *DefaultBookingService) ViewAllBookings() ([]models.BookingDTO, error) {
	logger := utils.GetLogger()
	logger.Info("Fetching all bookings")

	bookings, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	if len(bookings) == 0 {
		logger.Warn("No bookings found")
	}

	dtos := make([]models.BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		dtos = append(dtos, toBookingDTO(b))
	}
	return dtos, nil
}

// GetAllVehicles passes through to the vehicle directory. An empty directory
// is returned as-is.
func (s *DefaultBookingService) GetAllVehicles() ([]models.Vehicle, error) {
	logger := utils.GetLogger()
	logger.Info("Fetching all vehicles")

	vehicles, err := s.Vehicles.GetAllVehicles()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vehicles: %w", err)
	}
	if len(vehicles) == 0 {
		logger.Warn("No vehicles found")
	}
	return vehicles, nil
}

// GetAllRoutes passes through to the route directory. Unlike GetAllVehicles,
// an empty directory is an error here; the asymmetry matches the route
// service contract.
func (s *DefaultBookingService) GetAllRoutes() ([]models.Route, error) {
	logger := utils.GetLogger()
	logger.Info("Fetching all routes")

	routes, err := s.Routes.GetAllRoutes()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch routes: %w", err)
	}
	if len(routes) == 0 {
		logger.Warn("No routes found")
		return nil, NewNotFoundError("No routes found")
	}
	return routes, nil
}

// GetBookingsByCustomerID filters bookings by customer, with no enrichment or
// projection.
func (s *DefaultBookingService) GetBookingsByCustomerID(customerID int) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByCustomerID(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for customer %d: %w", customerID, err)
	}
	return bookings, nil
}

func toBookingDTO(b models.Booking) models.BookingDTO {
	return models.BookingDTO{
		BookingID:      strconv.FormatInt(b.BookingID, 10),
		CustomerID:     b.CustomerID,
		Username:       b.Username,
		VehicleName:    b.VehicleName,
		VehicleNo:      b.VehicleNo,
		RouteID:        b.RouteID,
		Source:         b.Source,
		Destination:    b.Destination,
		BookingDate:    b.BookingDate,
		JourneyDate:    b.JourneyDate,
		BoardingPoint:  b.BoardingPoint,
		DropPoint:      b.DropPoint,
		ContactNo:      b.ContactNo,
		Fare:           b.Fare,
		NoOfPassengers: b.NoOfPassengers,
		BookingStatus:  b.BookingStatus,
	}
}
