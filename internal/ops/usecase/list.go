package usecase

import (
	"context"

	"movi-ops-console/internal/model"
)

// snapshot runs one never-fail read: live first, then the last good snapshot,
// then the fixture seed. fetch and fallback are the per-entity accessors of
// the live and fixture sources.
func snapshot[T any](
	ctx context.Context,
	uc *implUseCase,
	key string,
	fetch func(context.Context) ([]T, error),
	fallback func(context.Context) ([]T, error),
) []T {
	rows, err := fetch(ctx)
	if err == nil {
		uc.cache.Add(key, rows)
		return rows
	}
	uc.l.Warnf(ctx, "ops usecase: live read of %s failed: %v", key, err)

	if cached, ok := uc.cache.Get(key); ok {
		if rows, ok := cached.([]T); ok {
			return rows
		}
	}

	rows, err = fallback(ctx)
	if err != nil {
		// The fixture source never fails; guard anyway.
		uc.l.Errorf(ctx, "ops usecase: fixture read of %s failed: %v", key, err)
		return nil
	}
	return rows
}

func (uc *implUseCase) ListTrips(ctx context.Context) []model.DailyTrip {
	return snapshot(ctx, uc, "trips", uc.live.Trips, uc.fixture.Trips)
}

func (uc *implUseCase) ListDeployments(ctx context.Context) []model.Deployment {
	return snapshot(ctx, uc, "deployments", uc.live.Deployments, uc.fixture.Deployments)
}

func (uc *implUseCase) ListVehicles(ctx context.Context) []model.Vehicle {
	return snapshot(ctx, uc, "vehicles", uc.live.Vehicles, uc.fixture.Vehicles)
}

func (uc *implUseCase) ListStops(ctx context.Context) []model.Stop {
	return snapshot(ctx, uc, "stops", uc.live.Stops, uc.fixture.Stops)
}

func (uc *implUseCase) ListPaths(ctx context.Context) []model.Path {
	return snapshot(ctx, uc, "paths", uc.live.Paths, uc.fixture.Paths)
}

func (uc *implUseCase) ListRoutes(ctx context.Context) []model.Route {
	return snapshot(ctx, uc, "routes", uc.live.Routes, uc.fixture.Routes)
}

func (uc *implUseCase) ListAvailableDrivers(ctx context.Context) []model.Driver {
	return snapshot(ctx, uc, "drivers", uc.live.AvailableDrivers, uc.fixture.AvailableDrivers)
}
