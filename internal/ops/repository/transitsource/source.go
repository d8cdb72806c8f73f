package transitsource

import (
	"context"

	"movi-ops-console/internal/model"
	"movi-ops-console/internal/ops/repository"
	"movi-ops-console/pkg/transit"
)

// implSource reads dashboard entities from the live transit backend.
type implSource struct {
	client transit.ITransit
}

var _ repository.Source = (*implSource)(nil)

// New creates a Source backed by the transit backend.
func New(client transit.ITransit) *implSource {
	return &implSource{client: client}
}

func (s *implSource) Trips(ctx context.Context) ([]model.DailyTrip, error) {
	rows, err := s.client.ListTrips(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.DailyTrip, len(rows))
	for i, r := range rows {
		out[i] = model.DailyTrip{
			TripID:                  r.TripID,
			RouteID:                 r.RouteID,
			DisplayName:             r.DisplayName,
			BookingStatusPercentage: r.BookingStatusPercentage,
			LiveStatus:              r.LiveStatus,
			ScheduledStart:          r.ScheduledStart,
		}
	}
	return out, nil
}

func (s *implSource) Deployments(ctx context.Context) ([]model.Deployment, error) {
	rows, err := s.client.ListDeployments(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Deployment, len(rows))
	for i, r := range rows {
		out[i] = model.Deployment{
			DeploymentID: r.DeploymentID,
			TripID:       r.TripID,
			VehicleID:    r.VehicleID,
			DriverID:     r.DriverID,
			AssignedAt:   r.AssignedAt,
		}
	}
	return out, nil
}

func (s *implSource) Vehicles(ctx context.Context) ([]model.Vehicle, error) {
	rows, err := s.client.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Vehicle, len(rows))
	for i, r := range rows {
		out[i] = model.Vehicle{
			VehicleID:    r.VehicleID,
			LicensePlate: r.LicensePlate,
			Type:         r.Type,
			Capacity:     r.Capacity,
			IsActive:     r.IsActive,
		}
	}
	return out, nil
}

func (s *implSource) Stops(ctx context.Context) ([]model.Stop, error) {
	rows, err := s.client.ListStops(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Stop, len(rows))
	for i, r := range rows {
		out[i] = model.Stop{
			StopID:    r.StopID,
			Name:      r.Name,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			CreatedAt: r.CreatedAt,
		}
	}
	return out, nil
}

func (s *implSource) Paths(ctx context.Context) ([]model.Path, error) {
	rows, err := s.client.ListPaths(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Path, len(rows))
	for i, r := range rows {
		out[i] = model.Path{
			PathID:         r.PathID,
			PathName:       r.PathName,
			OrderedStopIDs: r.OrderedStopIDs,
		}
	}
	return out, nil
}

func (s *implSource) Routes(ctx context.Context) ([]model.Route, error) {
	rows, err := s.client.ListRoutes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Route, len(rows))
	for i, r := range rows {
		out[i] = model.Route{
			RouteID:          r.RouteID,
			PathID:           r.PathID,
			RouteDisplayName: r.RouteDisplayName,
			ShiftTime:        r.ShiftTime,
			Direction:        r.Direction,
			StartPoint:       r.StartPoint,
			EndPoint:         r.EndPoint,
			Status:           r.Status,
		}
	}
	return out, nil
}

func (s *implSource) AvailableDrivers(ctx context.Context) ([]model.Driver, error) {
	rows, err := s.client.ListAvailableDrivers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Driver, len(rows))
	for i, r := range rows {
		out[i] = model.Driver{
			DriverID:    r.DriverID,
			Name:        r.Name,
			PhoneNumber: r.PhoneNumber,
			IsAvailable: r.IsAvailable,
		}
	}
	return out, nil
}
