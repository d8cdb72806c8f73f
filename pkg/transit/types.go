package transit

import "time"

// AgentActionRequest is the body for POST /agent/action.
type AgentActionRequest struct {
	Intent     string         `json:"intent"`
	Parameters map[string]any `json:"parameters"`
	Context    AgentContext   `json:"context"`
}

// AgentContext carries UI context alongside the intent.
type AgentContext struct {
	CurrentPage string `json:"currentPage"`
}

// Consequence is the backend's destructive-action warning. An action that
// returned a consequence has NOT been executed yet.
type Consequence struct {
	RequiresConfirmation bool   `json:"requires_confirmation,omitempty"`
	Reason               string `json:"reason"`
}

// AgentActionResponse is the backend agent's reply.
type AgentActionResponse struct {
	Message     string       `json:"message"`
	Data        any          `json:"data,omitempty"`
	Consequence *Consequence `json:"consequence,omitempty"`
}

// VisionMatch is the reply from POST /vision/match.
type VisionMatch struct {
	Match      string  `json:"match"`
	Confidence float64 `json:"confidence"`
}

// ---- Read endpoint entity shapes (backend wire format) ----

// Trip is a daily trip row.
type Trip struct {
	TripID                  int       `json:"trip_id"`
	RouteID                 int       `json:"route_id"`
	DisplayName             string    `json:"display_name"`
	BookingStatusPercentage int       `json:"booking_status_percentage"`
	LiveStatus              string    `json:"live_status"`
	ScheduledStart          time.Time `json:"scheduled_start"`
}

// Deployment is a vehicle/driver assignment row.
type Deployment struct {
	DeploymentID int       `json:"deployment_id"`
	TripID       int       `json:"trip_id"`
	VehicleID    int       `json:"vehicle_id"`
	DriverID     int       `json:"driver_id"`
	AssignedAt   time.Time `json:"assigned_at"`
}

// Vehicle is a fleet vehicle row.
type Vehicle struct {
	VehicleID    int    `json:"vehicle_id"`
	LicensePlate string `json:"license_plate"`
	Type         string `json:"type"`
	Capacity     int    `json:"capacity"`
	IsActive     bool   `json:"is_active"`
}

// Stop is a network stop row.
type Stop struct {
	StopID    int       `json:"stop_id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

// Path is an ordered stop sequence row.
type Path struct {
	PathID         int    `json:"path_id"`
	PathName       string `json:"path_name"`
	OrderedStopIDs []int  `json:"ordered_stop_ids"`
}

// Route is a scheduled route row.
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

// Driver is a driver row.
type Driver struct {
	DriverID    int    `json:"driver_id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	IsAvailable bool   `json:"is_available"`
}
