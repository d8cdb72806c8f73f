package intent

import (
	"strings"

	"movi-ops-console/internal/assistant"
	"movi-ops-console/internal/model"
)

// rule pairs a keyword predicate over the normalized text with a parameter
// builder that receives the raw (case-preserving) text.
type rule struct {
	match func(normalized string) bool
	build func(raw string, req *assistant.IntentRequest)
}

func contains(keyword string) func(string) bool {
	return func(normalized string) bool { return strings.Contains(normalized, keyword) }
}

// rules is the full intent grammar. Order is load-bearing: multiple keywords
// can co-occur in one utterance and the first matching rule wins, so any
// change here changes classification behavior.
var rules = []rule{
	{
		match: contains(TriggerUnassignedVehicles),
		build: func(raw string, req *assistant.IntentRequest) {
			req.Intent = assistant.IntentListUnassignedVehicles
		},
	},
	{
		match: contains(TriggerTripStatus),
		build: func(raw string, req *assistant.IntentRequest) {
			req.Intent = assistant.IntentGetTripStatus
			if name, ok := ExtractQuoted(raw); ok {
				req.Parameters["trip_name"] = name
			}
		},
	},
	{
		match: func(normalized string) bool {
			return strings.HasPrefix(normalized, TriggerCreateStop) || strings.Contains(normalized, TriggerNewStop)
		},
		build: func(raw string, req *assistant.IntentRequest) {
			req.Intent = assistant.IntentCreateStop
			name, ok := ExtractStopName(raw)
			if !ok {
				name = DefaultStopName
			}
			req.Parameters = map[string]any{
				"name":      name,
				"latitude":  PlaceholderLatitude,
				"longitude": PlaceholderLongitude,
			}
		},
	},
	{
		match: contains(TriggerCreatePath),
		build: func(raw string, req *assistant.IntentRequest) {
			req.Intent = assistant.IntentCreatePath
			name, ok := ExtractPathName(raw)
			if !ok {
				name = DefaultPathName
			}
			req.Parameters = map[string]any{
				"name":     name,
				"stop_ids": PlaceholderStopIDs,
			}
		},
	},
	{
		match: contains(TriggerCreateRoute),
		build: func(raw string, req *assistant.IntentRequest) {
			req.Intent = assistant.IntentCreateRoute
			name, ok := ExtractQuoted(raw)
			if !ok {
				name = DefaultRouteName
			}
			req.Parameters = map[string]any{
				"path_id":            PlaceholderPathID,
				"route_display_name": name,
				"shift_time":         DefaultShiftTime,
				"direction":          DefaultDirection,
				"start_point":        DefaultStartPoint,
				"end_point":          DefaultEndPoint,
				"status":             DefaultStatus,
			}
		},
	},
	{
		match: contains(TriggerRemoveVehicle),
		build: func(raw string, req *assistant.IntentRequest) {
			req.Intent = assistant.IntentRemoveVehicleFromTrip
			name, ok := ExtractQuoted(raw)
			if !ok {
				name = DefaultTripName
			}
			req.Parameters = map[string]any{
				"trip_id":   PlaceholderTripID,
				"trip_name": name,
			}
		},
	},
	{
		match: contains(TriggerAssignVehicle),
		build: func(raw string, req *assistant.IntentRequest) {
			req.Intent = assistant.IntentAssignVehicleToTrip
			req.Parameters = map[string]any{
				"trip_id":    PlaceholderTripID,
				"vehicle_id": PlaceholderVehicleID,
				"driver_id":  PlaceholderDriverID,
			}
		},
	},
	{
		match: contains(TriggerAvailableDrivers),
		build: func(raw string, req *assistant.IntentRequest) {
			req.Intent = assistant.IntentListAvailableDrivers
		},
	},
	{
		match: contains(TriggerDeployments),
		build: func(raw string, req *assistant.IntentRequest) {
			req.Intent = assistant.IntentListDeployments
		},
	},
	{
		match: contains(TriggerRoutesUsingPath),
		build: func(raw string, req *assistant.IntentRequest) {
			req.Intent = assistant.IntentListRoutesUsingPath
			name, ok := ExtractPathName(raw)
			if !ok {
				name = DefaultPath
			}
			req.Parameters["path_name"] = name
		},
	},
	{
		match: contains(TriggerStopsForPath),
		build: func(raw string, req *assistant.IntentRequest) {
			req.Intent = assistant.IntentListStopsForPath
			name, ok := ExtractPathName(raw)
			if !ok {
				name = DefaultPath
			}
			req.Parameters["path_name"] = name
		},
	},
	{
		match: func(normalized string) bool {
			return strings.Contains(normalized, TriggerStatusInactive) || strings.Contains(normalized, TriggerDeactivateRoute)
		},
		build: func(raw string, req *assistant.IntentRequest) {
			req.Intent = assistant.IntentUpdateRouteStatus
			req.Parameters = map[string]any{
				"route_id":  PlaceholderRouteID,
				"status":    StatusInactive,
				"confirmed": strings.Contains(Normalize(raw), TriggerConfirm),
			}
		},
	},
	{
		match: contains(TriggerTrips),
		build: func(raw string, req *assistant.IntentRequest) {
			req.Intent = assistant.IntentListDailyTrips
		},
	},
}

// Classify resolves free operator text into an IntentRequest. The rules are
// evaluated in order against the normalized text and the first match wins; if
// nothing matches the request falls back to list_daily_trips with empty
// parameters.
func Classify(text string, page model.Page) assistant.IntentRequest {
	normalized := Normalize(text)

	req := assistant.IntentRequest{
		Intent:     assistant.IntentListDailyTrips,
		Parameters: map[string]any{},
		Context:    assistant.IntentContext{CurrentPage: page},
	}

	for _, r := range rules {
		if r.match(normalized) {
			r.build(text, &req)
			break
		}
	}

	return req
}
