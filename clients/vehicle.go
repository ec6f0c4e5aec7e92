package clients

import (
	"fmt"
	"net/url"

	"github.com/ManasaGone/BookingService/config"
	"github.com/ManasaGone/BookingService/models"
)

// VehicleDirectory defines the read-only lookups against the vehicle service.
type VehicleDirectory interface {
	// GetVehicleByName retrieves a vehicle by its name. Returns nil when the
	// directory has no entry for the name.
	GetVehicleByName(name string) (*models.Vehicle, error)
	// GetAllVehicles retrieves every vehicle known to the directory.
	GetAllVehicles() ([]models.Vehicle, error)
}

// HTTPVehicleDirectory implements VehicleDirectory over HTTP.
type HTTPVehicleDirectory struct {
	BaseURL string
}

// NewHTTPVehicleDirectory creates a vehicle directory client against the
// configured vehicle service base URL.
func NewHTTPVehicleDirectory() VehicleDirectory {
	return &HTTPVehicleDirectory{BaseURL: config.AppConfig.VehicleServiceURL}
}

func (d *HTTPVehicleDirectory) GetVehicleByName(name string) (*models.Vehicle, error) {
	endpoint := fmt.Sprintf("%s/vehicles/name/%s", d.BaseURL, url.PathEscape(name))

	var vehicle models.Vehicle
	found, err := getJSON(endpoint, &vehicle)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &vehicle, nil
}

func (d *HTTPVehicleDirectory) GetAllVehicles() ([]models.Vehicle, error) {
	endpoint := fmt.Sprintf("%s/vehicles/ViewAllVehicles", d.BaseURL)

	var vehicles []models.Vehicle
	if _, err := getJSON(endpoint, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}
