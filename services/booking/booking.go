package booking

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ManasaGone/BookingService/models"
	"github.com/ManasaGone/BookingService/utils"
)

const dateLayout = "2006-01-02"

// today returns the current date truncated to midnight, in the same frame the
// journey date is parsed in.
func today() time.Time {
	t, _ := time.Parse(dateLayout, time.Now().Format(dateLayout))
	return t
}

// CreateBooking validates and enriches a booking draft, derives the remaining
// fields and persists the result. The caller-supplied vehicle and route
// denormalizations are always overwritten with the directory values.
func (s *DefaultBookingService) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	logger := utils.GetLogger()
	logger.Info("Creating booking", zap.String("vehicleName", booking.VehicleName))

	vehicle, err := s.Vehicles.GetVehicleByName(booking.VehicleName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up vehicle %q: %w", booking.VehicleName, err)
	}
	if vehicle == nil {
		logger.Error("Vehicle not found", zap.String("vehicleName", booking.VehicleName))
		return nil, NewNotFoundError("Vehicle not found for name :: " + booking.VehicleName)
	}
	// The directory is authoritative for both fields, the name included.
	booking.VehicleNo = vehicle.VehicleNo
	booking.VehicleName = vehicle.VehicleName

	route, err := s.Routes.GetRouteByID(booking.RouteID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up route %d: %w", booking.RouteID, err)
	}
	if route == nil {
		logger.Error("Route not found", zap.Int("routeId", booking.RouteID))
		return nil, NewNotFoundError("Route not found for id :: " + strconv.Itoa(booking.RouteID))
	}
	booking.Source = route.Source
	booking.Destination = route.Destination

	// Default the booking date; a caller-supplied date is kept as-is.
	if booking.BookingDate == "" {
		booking.BookingDate = time.Now().Format(dateLayout)
	}
	if booking.JourneyDate == "" {
		return nil, NewInvalidInputError("Journey date is required")
	}
	journey, err := time.Parse(dateLayout, booking.JourneyDate)
	if err != nil {
		return nil, NewInvalidInputError("Journey date must be in YYYY-MM-DD format")
	}

	// Decided once at creation; never re-evaluated when the journey date passes.
	if journey.Before(today()) {
		booking.BookingStatus = models.StatusCompleted
	} else {
		booking.BookingStatus = models.StatusUpcoming
	}

	saved, err := s.Repo.Save(booking)
	if err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}
	logger.Info("Booking created successfully", zap.Int64("bookingId", saved.BookingID))
	return saved, nil
}

// GetBookingByID retrieves a single booking.
func (s *DefaultBookingService) GetBookingByID(bookingID int64) (*models.Booking, error) {
	logger := utils.GetLogger()
	logger.Info("Fetching booking", zap.Int64("bookingId", bookingID))

	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %d: %w", bookingID, err)
	}
	if booking == nil {
		logger.Error("Booking not found", zap.Int64("bookingId", bookingID))
		return nil, NewNotFoundError(fmt.Sprintf("Booking not found for this id :: %d", bookingID))
	}
	return booking, nil
}

// CancelBooking marks a booking as cancelled. The transition is unconditional:
// cancelling an already cancelled or completed booking succeeds and leaves the
// record in the Cancelled state.
func (s *DefaultBookingService) CancelBooking(bookingID int64) error {
	logger := utils.GetLogger()
	logger.Info("Cancelling booking", zap.Int64("bookingId", bookingID))

	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return fmt.Errorf("failed to fetch booking %d: %w", bookingID, err)
	}
	if booking == nil {
		logger.Error("Booking not found", zap.Int64("bookingId", bookingID))
		return NewNotFoundError(fmt.Sprintf("Booking not found for this id :: %d", bookingID))
	}

	booking.BookingStatus = models.StatusCancelled
	if _, err := s.Repo.Save(booking); err != nil {
		return fmt.Errorf("failed to save cancelled booking %d: %w", bookingID, err)
	}
	logger.Info("Booking cancelled successfully", zap.Int64("bookingId", bookingID))
	return nil
}
