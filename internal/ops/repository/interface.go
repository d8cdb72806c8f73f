package repository

import (
	"context"

	"movi-ops-console/internal/model"
)

// Source provides the dashboard entity reads.
type Source interface {
	Trips(ctx context.Context) ([]model.DailyTrip, error)
	Deployments(ctx context.Context) ([]model.Deployment, error)
	Vehicles(ctx context.Context) ([]model.Vehicle, error)
	Stops(ctx context.Context) ([]model.Stop, error)
	Paths(ctx context.Context) ([]model.Path, error)
	Routes(ctx context.Context) ([]model.Route, error)
	AvailableDrivers(ctx context.Context) ([]model.Driver, error)
}
