package models

// Booking status values. The status is decided once when the booking is
// created and only ever changes to Cancelled afterwards.
const (
	StatusUpcoming  = "Upcoming"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Booking represents a persisted reservation record.
type Booking struct {
	BookingID      int64   `bson:"bookingId" json:"bookingId"` // Assigned by the store on creation, immutable
	CustomerID     int     `bson:"customerId" json:"customerId"`
	Username       string  `bson:"username" json:"username"`
	VehicleName    string  `bson:"vehicleName" json:"vehicleName"` // Canonical name from the vehicle directory
	VehicleNo      string  `bson:"vehicleNo" json:"vehicleNo"`     // Registration number from the vehicle directory
	RouteID        int     `bson:"routeId" json:"routeId"`
	Source         string  `bson:"source" json:"source"`           // From the route directory
	Destination    string  `bson:"destination" json:"destination"` // From the route directory
	BookingDate    string  `bson:"bookingDate" json:"bookingDate"` // "YYYY-MM-DD", defaults to the creation date
	JourneyDate    string  `bson:"journeyDate" json:"journeyDate"` // "YYYY-MM-DD", required
	BoardingPoint  string  `bson:"boardingPoint" json:"boardingPoint"`
	DropPoint      string  `bson:"dropPoint" json:"dropPoint"`
	ContactNo      string  `bson:"contactNo" json:"contactNo"`
	Fare           float64 `bson:"fare" json:"fare"`
	NoOfPassengers int     `bson:"noOfPassengers" json:"noOfPassengers"`
	BookingStatus  string  `bson:"bookingStatus" json:"bookingStatus"` // Upcoming, Completed or Cancelled
}

// BookingDTO is the read projection of a Booking used by the listing
// endpoint. The identifier is rendered as text; everything else is copied
// verbatim.
type BookingDTO struct {
	BookingID      string  `json:"bookingId"`
	CustomerID     int     `json:"customerId"`
	Username       string  `json:"username"`
	VehicleName    string  `json:"vehicleName"`
	VehicleNo      string  `json:"vehicleNo"`
	RouteID        int     `json:"routeId"`
	Source         string  `json:"source"`
	Destination    string  `json:"destination"`
	BookingDate    string  `json:"bookingDate"`
	JourneyDate    string  `json:"journeyDate"`
	BoardingPoint  string  `json:"boardingPoint"`
	DropPoint      string  `json:"dropPoint"`
	ContactNo      string  `json:"contactNo"`
	Fare           float64 `json:"fare"`
	NoOfPassengers int     `json:"noOfPassengers"`
	BookingStatus  string  `json:"bookingStatus"`
}
