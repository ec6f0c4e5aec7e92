package models

// Vehicle is the directory record served by the vehicle service.
type Vehicle struct {
	VehicleNo   string `json:"vehicleNo"`
	VehicleName string `json:"vehicleName"`
}
