package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ManasaGone/BookingService/models"
	"github.com/ManasaGone/BookingService/services/booking"
)

// stubBookingService implements booking.BookingService with overridable funcs.
type stubBookingService struct {
	createFn      func(*models.Booking) (*models.Booking, error)
	getByIDFn     func(int64) (*models.Booking, error)
	cancelFn      func(int64) error
	viewAllFn     func() ([]models.BookingDTO, error)
	allVehiclesFn func() ([]models.Vehicle, error)
	allRoutesFn   func() ([]models.Route, error)
	byCustomerFn  func(int) ([]models.Booking, error)
}

func (s *stubBookingService) CreateBooking(b *models.Booking) (*models.Booking, error) {
	return s.createFn(b)
}

func (s *stubBookingService) GetBookingByID(id int64) (*models.Booking, error) {
	return s.getByIDFn(id)
}

func (s *stubBookingService) CancelBooking(id int64) error {
	return s.cancelFn(id)
}

func (s *stubBookingService) ViewAllBookings() ([]models.BookingDTO, error) {
	return s.viewAllFn()
}

func (s *stubBookingService) GetAllVehicles() ([]models.Vehicle, error) {
	return s.allVehiclesFn()
}

func (s *stubBookingService) GetAllRoutes() ([]models.Route, error) {
	return s.allRoutesFn()
}

func (s *stubBookingService) GetBookingsByCustomerID(customerID int) ([]models.Booking, error) {
	return s.byCustomerFn(customerID)
}

func newTestRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc, zap.NewNop())

	bookings := r.Group("/bookings")
	bookings.POST("/addBooking", h.CreateBooking)
	bookings.GET("/viewBooking/:bookingId", h.GetBookingByID)
	bookings.GET("/viewAllBookings", h.ViewAllBookings)
	bookings.DELETE("/deleteBooking/:bookingId", h.CancelBooking)
	bookings.GET("/ViewAllVehicles", h.GetAllVehicles)
	bookings.GET("/ViewAllRoutes", h.GetAllRoutes)
	bookings.GET("/customer/:customerId", h.GetBookingsByCustomerID)
	return r
}

func TestCreateBookingHandler(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(b *models.Booking) (*models.Booking, error) {
			b.BookingID = 1
			b.VehicleNo = "AP36AL3691"
			b.BookingStatus = models.StatusUpcoming
			return b, nil
		},
	}
	r := newTestRouter(svc)

	body := `{"vehicleName":"Vehicle1","routeId":1,"journeyDate":"2030-01-01"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/addBooking", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bookingId":1`)
	assert.Contains(t, w.Body.String(), `"vehicleNo":"AP36AL3691"`)
}

func TestCreateBookingHandlerInvalidInput(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(b *models.Booking) (*models.Booking, error) {
			return nil, booking.NewInvalidInputError("Journey date is required")
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/addBooking", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Journey date is required")
}

func TestCreateBookingHandlerVehicleNotFound(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(b *models.Booking) (*models.Booking, error) {
			return nil, booking.NewNotFoundError("Vehicle not found for name :: UnknownVehicle")
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/addBooking",
		strings.NewReader(`{"vehicleName":"UnknownVehicle"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Vehicle not found for name :: UnknownVehicle")
}

func TestViewAllBookingsHandler(t *testing.T) {
	svc := &stubBookingService{
		viewAllFn: func() ([]models.BookingDTO, error) {
			return []models.BookingDTO{{BookingID: "1"}}, nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/viewAllBookings", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bookingId":"1"`)
}

func TestCancelBookingHandler(t *testing.T) {
	var cancelled int64
	svc := &stubBookingService{
		cancelFn: func(id int64) error {
			cancelled = id
			return nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/bookings/deleteBooking/1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Booking cancelled successfully", w.Body.String())
	assert.Equal(t, int64(1), cancelled)
}

func TestCancelBookingHandlerNotFound(t *testing.T) {
	svc := &stubBookingService{
		cancelFn: func(id int64) error {
			return booking.NewNotFoundError("Booking not found for this id :: 1")
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/bookings/deleteBooking/1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBookingByIDHandlerBadID(t *testing.T) {
	r := newTestRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/viewBooking/abc", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAllVehiclesHandlerEmpty(t *testing.T) {
	svc := &stubBookingService{
		allVehiclesFn: func() ([]models.Vehicle, error) {
			return nil, nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/ViewAllVehicles", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetAllRoutesHandlerEmpty(t *testing.T) {
	svc := &stubBookingService{
		allRoutesFn: func() ([]models.Route, error) {
			return nil, booking.NewNotFoundError("No routes found")
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/ViewAllRoutes", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No routes found")
}

func TestGetBookingsByCustomerIDHandler(t *testing.T) {
	svc := &stubBookingService{
		byCustomerFn: func(customerID int) ([]models.Booking, error) {
			return []models.Booking{{BookingID: 1, CustomerID: customerID}}, nil
		},
	}
	r := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/customer/7", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"customerId":7`)
}
