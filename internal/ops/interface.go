package ops

import (
	"context"

	"movi-ops-console/internal/model"
)

// UseCase exposes the dashboard read model. Reads never fail: when the live
// backend is unreachable the last good snapshot is served, and when no
// snapshot exists yet the seeded fixture data is.
type UseCase interface {
	ListTrips(ctx context.Context) []model.DailyTrip
	ListDeployments(ctx context.Context) []model.Deployment
	ListVehicles(ctx context.Context) []model.Vehicle
	ListStops(ctx context.Context) []model.Stop
	ListPaths(ctx context.Context) []model.Path
	ListRoutes(ctx context.Context) []model.Route
	ListAvailableDrivers(ctx context.Context) []model.Driver
}
