package clients

import (
	"fmt"

	"github.com/ManasaGone/BookingService/config"
	"github.com/ManasaGone/BookingService/models"
)

// RouteDirectory defines the read-only lookups against the route service.
type RouteDirectory interface {
	// GetRouteByID retrieves a route by its identifier. Returns nil when the
	// directory has no entry for the id.
	GetRouteByID(routeID int) (*models.Route, error)
	// GetAllRoutes retrieves every route known to the directory.
	GetAllRoutes() ([]models.Route, error)
}

// HTTPRouteDirectory implements RouteDirectory over HTTP.
type HTTPRouteDirectory struct {
	BaseURL string
}

// NewHTTPRouteDirectory creates a route directory client against the
// configured route service base URL.
func NewHTTPRouteDirectory() RouteDirectory {
	return &HTTPRouteDirectory{BaseURL: config.AppConfig.RouteServiceURL}
}

func (d *HTTPRouteDirectory) GetRouteByID(routeID int) (*models.Route, error) {
	endpoint := fmt.Sprintf("%s/route/ViewRouteById/%d", d.BaseURL, routeID)

	var route models.Route
	found, err := getJSON(endpoint, &route)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &route, nil
}

func (d *HTTPRouteDirectory) GetAllRoutes() ([]models.Route, error) {
	endpoint := fmt.Sprintf("%s/route/ViewAllRoutes", d.BaseURL)

	var routes []models.Route
	if _, err := getJSON(endpoint, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}
