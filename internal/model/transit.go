package model

import "time"

// Stop is a boarding point on the transport network.
type Stop struct {
	StopID    int       `json:"stop_id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// Path is an ordered sequence of stops.
type Path struct {
	PathID         int    `json:"path_id"`
	PathName       string `json:"path_name"`
	OrderedStopIDs []int  `json:"ordered_stop_ids"`
}

// Route is a scheduled service over a path.
type Route struct {
	RouteID          int    `json:"route_id"`
	PathID           int    `json:"path_id"`
	RouteDisplayName string `json:"route_display_name"`
	ShiftTime        string `json:"shift_time"`
	Direction        string `json:"direction"`
	StartPoint       string `json:"start_point"`
	EndPoint         string `json:"end_point"`
	Status           string `json:"status"`
}

// Vehicle is a bus or van in the fleet.
type Vehicle struct {
	VehicleID    int    `json:"vehicle_id"`
	LicensePlate string `json:"license_plate"`
	Type         string `json:"type"`
	Capacity     int    `json:"capacity"`
	IsActive     bool   `json:"is_active"`
}

// Driver is an operator who can be deployed on a trip.
type Driver struct {
	DriverID    int    `json:"driver_id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	IsAvailable bool   `json:"is_available"`
}

// DailyTrip is a single day-of instance of a route.
type DailyTrip struct {
	TripID                  int       `json:"trip_id"`
	RouteID                 int       `json:"route_id"`
	DisplayName             string    `json:"display_name"`
	BookingStatusPercentage int       `json:"booking_status_percentage"`
	LiveStatus              string    `json:"live_status"`
	ScheduledStart          time.Time `json:"scheduled_start"`
}

// Deployment is a vehicle+driver assignment to a trip.
type Deployment struct {
	DeploymentID int       `json:"deployment_id"`
	TripID       int       `json:"trip_id"`
	VehicleID    int       `json:"vehicle_id"`
	DriverID     int       `json:"driver_id"`
	AssignedAt   time.Time `json:"assigned_at"`
}
