package clients

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVehicleByName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/vehicles/name/Vehicle1":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"vehicleNo":"AP36AL3691","vehicleName":"Vehicle1"}`))
		case "/vehicles/name/NullVehicle":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`null`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	dir := &HTTPVehicleDirectory{BaseURL: srv.URL}

	vehicle, err := dir.GetVehicleByName("Vehicle1")
	require.NoError(t, err)
	require.NotNil(t, vehicle)
	assert.Equal(t, "AP36AL3691", vehicle.VehicleNo)
	assert.Equal(t, "Vehicle1", vehicle.VehicleName)

	// A 404 from the directory is absence, not an error.
	vehicle, err = dir.GetVehicleByName("UnknownVehicle")
	require.NoError(t, err)
	assert.Nil(t, vehicle)

	// So is an explicit null body.
	vehicle, err = dir.GetVehicleByName("NullVehicle")
	require.NoError(t, err)
	assert.Nil(t, vehicle)
}

func TestGetVehicleByNameTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	dir := &HTTPVehicleDirectory{BaseURL: srv.URL}
	_, err := dir.GetVehicleByName("Vehicle1")
	require.Error(t, err)

	// Unreachable directory also surfaces as an error.
	srv.Close()
	_, err = dir.GetVehicleByName("Vehicle1")
	require.Error(t, err)
}

func TestGetAllVehicles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/vehicles/ViewAllVehicles", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"vehicleNo":"AP36AL3691","vehicleName":"Vehicle1"}]`))
	}))
	defer srv.Close()

	dir := &HTTPVehicleDirectory{BaseURL: srv.URL}
	vehicles, err := dir.GetAllVehicles()
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Vehicle1", vehicles[0].VehicleName)
}

func TestGetRouteByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/route/ViewRouteById/1" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"routeId":1,"source":"Source","destination":"Destination"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	dir := &HTTPRouteDirectory{BaseURL: srv.URL}

	route, err := dir.GetRouteByID(1)
	require.NoError(t, err)
	require.NotNil(t, route)
	assert.Equal(t, "Source", route.Source)
	assert.Equal(t, "Destination", route.Destination)

	route, err = dir.GetRouteByID(2)
	require.NoError(t, err)
	assert.Nil(t, route)
}

func TestGetAllRoutes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/route/ViewAllRoutes", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	dir := &HTTPRouteDirectory{BaseURL: srv.URL}
	routes, err := dir.GetAllRoutes()
	require.NoError(t, err)
	assert.Empty(t, routes)
}
