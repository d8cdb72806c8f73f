package intent

// Trigger keywords, matched against the normalized (lowercased) utterance.
const (
	TriggerUnassignedVehicles = "unassigned vehicles"
	TriggerTripStatus         = "trip status"
	TriggerCreateStop         = "create stop"
	TriggerNewStop            = "new stop"
	TriggerCreatePath         = "create path"
	TriggerCreateRoute        = "create route"
	TriggerRemoveVehicle      = "remove vehicle"
	TriggerAssignVehicle      = "assign vehicle"
	TriggerAvailableDrivers   = "available drivers"
	TriggerDeployments        = "deployments"
	TriggerRoutesUsingPath    = "routes using path"
	TriggerStopsForPath       = "stops for path"
	TriggerStatusInactive     = "status inactive"
	TriggerDeactivateRoute    = "deactivate route"
	TriggerConfirm            = "confirm"
	TriggerTrips              = "trips"
)

// Placeholder defaults injected when free text does not yield a real value.
// These are NOT resolved against live entity data; they are demo-stub
// defaults kept in one place so an entity-resolution step can replace them.
const (
	DefaultStopName  = "New Stop"
	DefaultPathName  = "New Path"
	DefaultRouteName = "AI Route"
	DefaultTripName  = "Bulk - 00:01"
	DefaultPath      = "North Loop"

	PlaceholderLatitude  = 12.98
	PlaceholderLongitude = 77.59

	PlaceholderPathID    = 1
	PlaceholderRouteID   = 1
	PlaceholderTripID    = 1
	PlaceholderVehicleID = 1
	PlaceholderDriverID  = 1

	DefaultShiftTime  = "09:00"
	DefaultDirection  = "Outbound"
	DefaultStartPoint = "Campus Gate"
	DefaultEndPoint   = "Tech Park"
	DefaultStatus     = "Scheduled"
	StatusInactive    = "Inactive"
)

// PlaceholderStopIDs is the fixed stop list for create_path.
var PlaceholderStopIDs = []int{1, 2, 3}
