package transit

import (
	"context"
	"io"
)

// ITransit is the contract exposed by the transport backend client.
type ITransit interface {
	// AgentAction submits an intent envelope to the backend agent.
	AgentAction(ctx context.Context, req AgentActionRequest) (*AgentActionResponse, error)

	// MatchScreenshot uploads an image for visual trip lookup.
	MatchScreenshot(ctx context.Context, filename string, image io.Reader) (*VisionMatch, error)

	// Read endpoints for the dashboard views.
	ListTrips(ctx context.Context) ([]Trip, error)
	ListDeployments(ctx context.Context) ([]Deployment, error)
	ListVehicles(ctx context.Context) ([]Vehicle, error)
	ListStops(ctx context.Context) ([]Stop, error)
	ListPaths(ctx context.Context) ([]Path, error)
	ListRoutes(ctx context.Context) ([]Route, error)
	ListAvailableDrivers(ctx context.Context) ([]Driver, error)
}
