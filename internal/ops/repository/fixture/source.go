package fixture

import (
	"context"
	"time"

	"movi-ops-console/internal/model"
	"movi-ops-console/internal/ops/repository"
)

// implSource serves a small seeded network so the dashboard renders something
// meaningful before the backend has ever been reachable.
type implSource struct {
	seededAt time.Time
}

var _ repository.Source = (*implSource)(nil)

// New creates the seeded fixture Source. Trip start times are anchored to the
// creation instant.
func New() *implSource {
	return &implSource{seededAt: time.Now().UTC()}
}

func (s *implSource) Trips(ctx context.Context) ([]model.DailyTrip, error) {
	return []model.DailyTrip{
		{
			TripID:                  1,
			RouteID:                 1,
			DisplayName:             "Bulk - 00:01",
			BookingStatusPercentage: 25,
			LiveStatus:              "Scheduled",
			ScheduledStart:          s.seededAt.Add(1 * time.Hour),
		},
		{
			TripID:                  2,
			RouteID:                 2,
			DisplayName:             "Bulk - 08:30",
			BookingStatusPercentage: 60,
			LiveStatus:              "Live",
			ScheduledStart:          s.seededAt.Add(8 * time.Hour),
		},
	}, nil
}

func (s *implSource) Deployments(ctx context.Context) ([]model.Deployment, error) {
	return []model.Deployment{
		{DeploymentID: 1, TripID: 2, VehicleID: 2, DriverID: 2, AssignedAt: s.seededAt},
	}, nil
}

func (s *implSource) Vehicles(ctx context.Context) ([]model.Vehicle, error) {
	return []model.Vehicle{
		{VehicleID: 1, LicensePlate: "KA01AB1234", Type: "Mini Bus", Capacity: 25, IsActive: true},
		{VehicleID: 2, LicensePlate: "KA01AB5678", Type: "Coach", Capacity: 40, IsActive: true},
		{VehicleID: 3, LicensePlate: "KA01AB9012", Type: "Mini Bus", Capacity: 20, IsActive: false},
	}, nil
}

func (s *implSource) Stops(ctx context.Context) ([]model.Stop, error) {
	return []model.Stop{
		{StopID: 1, Name: "Campus Gate", Latitude: 12.9716, Longitude: 77.5946, CreatedAt: s.seededAt},
		{StopID: 2, Name: "Tech Park", Latitude: 12.9081, Longitude: 77.6476, CreatedAt: s.seededAt},
		{StopID: 3, Name: "Metro Station", Latitude: 12.9352, Longitude: 77.6245, CreatedAt: s.seededAt},
		{StopID: 4, Name: "City Center", Latitude: 12.9784, Longitude: 77.6408, CreatedAt: s.seededAt},
		{StopID: 5, Name: "Warehouse Hub", Latitude: 12.9901, Longitude: 77.5802, CreatedAt: s.seededAt},
	}, nil
}

func (s *implSource) Paths(ctx context.Context) ([]model.Path, error) {
	return []model.Path{
		{PathID: 1, PathName: "North Loop", OrderedStopIDs: []int{1, 2, 3}},
		{PathID: 2, PathName: "South Loop", OrderedStopIDs: []int{3, 4, 5}},
	}, nil
}

func (s *implSource) Routes(ctx context.Context) ([]model.Route, error) {
	return []model.Route{
		{
			RouteID:          1,
			PathID:           1,
			RouteDisplayName: "Bulk - 00:01",
			ShiftTime:        "00:01",
			Direction:        "Outbound",
			StartPoint:       "Campus Gate",
			EndPoint:         "Tech Park",
			Status:           "Scheduled",
		},
		{
			RouteID:          2,
			PathID:           2,
			RouteDisplayName: "Bulk - 08:30",
			ShiftTime:        "08:30",
			Direction:        "Inbound",
			StartPoint:       "Warehouse Hub",
			EndPoint:         "Campus Gate",
			Status:           "Live",
		},
	}, nil
}

func (s *implSource) AvailableDrivers(ctx context.Context) ([]model.Driver, error) {
	return []model.Driver{
		{DriverID: 1, Name: "Sanjay Kumar", PhoneNumber: "+91-9876543210", IsAvailable: true},
		{DriverID: 2, Name: "Priya Singh", PhoneNumber: "+91-9876543211", IsAvailable: true},
		{DriverID: 3, Name: "Arun Das", PhoneNumber: "+91-9876543212", IsAvailable: true},
	}, nil
}
