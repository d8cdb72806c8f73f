package assistant

import (
	"io"

	"movi-ops-console/internal/model"
)

// IntentKind is the closed set of backend actions the classifier can resolve.
type IntentKind string

const (
	IntentListUnassignedVehicles IntentKind = "list_unassigned_vehicles"
	IntentGetTripStatus          IntentKind = "get_trip_status"
	IntentCreateStop             IntentKind = "create_stop"
	IntentCreatePath             IntentKind = "create_path"
	IntentCreateRoute            IntentKind = "create_route"
	IntentRemoveVehicleFromTrip  IntentKind = "remove_vehicle_from_trip"
	IntentAssignVehicleToTrip    IntentKind = "assign_vehicle_to_trip"
	IntentListAvailableDrivers   IntentKind = "list_available_drivers"
	IntentListDeployments        IntentKind = "list_deployments"
	IntentListRoutesUsingPath    IntentKind = "list_routes_using_path"
	IntentListStopsForPath       IntentKind = "list_stops_for_path"
	IntentUpdateRouteStatus      IntentKind = "update_route_status"
	IntentListDailyTrips         IntentKind = "list_daily_trips"
)

// IntentContext carries the UI context the request was made from.
type IntentContext struct {
	CurrentPage model.Page `json:"currentPage"`
}

// IntentRequest is the envelope dispatched to the backend agent. It is built
// fresh per submission and not mutated after dispatch; the confirmation
// round-trip works on a copy produced by WithConfirmation.
type IntentRequest struct {
	Intent     IntentKind     `json:"intent"`
	Parameters map[string]any `json:"parameters"`
	Context    IntentContext  `json:"context"`
}

// WithConfirmation returns a copy of the request whose parameters carry
// confirmed=true. All other parameters are preserved unchanged.
func (r IntentRequest) WithConfirmation() IntentRequest {
	params := make(map[string]any, len(r.Parameters)+1)
	for k, v := range r.Parameters {
		params[k] = v
	}
	params["confirmed"] = true
	return IntentRequest{
		Intent:     r.Intent,
		Parameters: params,
		Context:    r.Context,
	}
}

// Consequence is a backend-signaled warning that the action was NOT executed
// and requires explicit operator confirmation.
type Consequence struct {
	RequiresConfirmation bool   `json:"requires_confirmation,omitempty"`
	Reason               string `json:"reason"`
}

// DispatchResult is the backend agent's reply to a dispatched IntentRequest.
// A result with Consequence set and Data unset represents a pending action.
type DispatchResult struct {
	Message     string       `json:"message"`
	Data        any          `json:"data,omitempty"`
	Consequence *Consequence `json:"consequence,omitempty"`
}

// MessageMeta is attached to assistant messages that carry a dispatch result.
// IntentPayload is retained only on messages carrying a consequence, to
// support the confirmation round-trip.
type MessageMeta struct {
	DispatchResult
	IntentPayload *IntentRequest `json:"intentPayload,omitempty"`
}

// Message is a single entry in the conversation log. Messages are created
// exactly once and immutable thereafter.
type Message struct {
	ID   string       `json:"id"`
	Role model.Role   `json:"role"`
	Text string       `json:"text"`
	Meta *MessageMeta `json:"meta,omitempty"`
}

// ---- UseCase inputs / outputs ----

// SubmitInput is a free-text operator request against a session.
type SubmitInput struct {
	SessionID string
	Text      string
	Page      model.Page
}

// ConfirmInput identifies the pending-confirmation message to confirm.
type ConfirmInput struct {
	SessionID string
	MessageID string
}

// VisionInput is a screenshot upload for visual trip lookup.
type VisionInput struct {
	SessionID string
	Filename  string
	Image     io.Reader
}

// ExchangeOutput carries the messages appended by a single exchange, in
// insertion order.
type ExchangeOutput struct {
	Messages []Message
}

// StartSessionOutput is the result of opening a new conversation session.
type StartSessionOutput struct {
	SessionID string
	Messages  []Message
}
