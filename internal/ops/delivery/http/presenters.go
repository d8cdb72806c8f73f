package http

import (
	"movi-ops-console/internal/model"
)

type tripsResp struct {
	Trips []model.DailyTrip `json:"trips"`
}

type deploymentsResp struct {
	Deployments []model.Deployment `json:"deployments"`
}

type vehiclesResp struct {
	Vehicles []model.Vehicle `json:"vehicles"`
}

type stopsResp struct {
	Stops []model.Stop `json:"stops"`
}

type pathsResp struct {
	Paths []model.Path `json:"paths"`
}

type routesResp struct {
	Routes []model.Route `json:"routes"`
}

type driversResp struct {
	Drivers []model.Driver `json:"drivers"`
}
