package models

// Route is the directory record served by the route service.
type Route struct {
	RouteID     int    `json:"routeId"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
}
