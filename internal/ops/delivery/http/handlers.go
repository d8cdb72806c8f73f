package http

import (
	"github.com/gin-gonic/gin"

	"movi-ops-console/pkg/response"
)

// ListTrips godoc
// @Summary     List daily trips
// @Description Returns today's trips. Served from the live backend, the last good snapshot or the seeded fixture, in that order.
// @Tags        Ops
// @Produce     json
// @Success     200 {object} tripsResp
// @Router      /api/v1/ops/trips [GET]
func (h *handler) ListTrips(c *gin.Context) {
	response.OK(c, tripsResp{Trips: h.uc.ListTrips(c.Request.Context())})
}

// ListDeployments godoc
// @Summary     List deployments
// @Tags        Ops
// @Produce     json
// @Success     200 {object} deploymentsResp
// @Router      /api/v1/ops/deployments [GET]
func (h *handler) ListDeployments(c *gin.Context) {
	response.OK(c, deploymentsResp{Deployments: h.uc.ListDeployments(c.Request.Context())})
}

// ListVehicles godoc
// @Summary     List fleet vehicles
// @Tags        Ops
// @Produce     json
// @Success     200 {object} vehiclesResp
// @Router      /api/v1/ops/vehicles [GET]
func (h *handler) ListVehicles(c *gin.Context) {
	response.OK(c, vehiclesResp{Vehicles: h.uc.ListVehicles(c.Request.Context())})
}

// ListStops godoc
// @Summary     List network stops
// @Tags        Ops
// @Produce     json
// @Success     200 {object} stopsResp
// @Router      /api/v1/ops/stops [GET]
func (h *handler) ListStops(c *gin.Context) {
	response.OK(c, stopsResp{Stops: h.uc.ListStops(c.Request.Context())})
}

// ListPaths godoc
// @Summary     List paths
// @Tags        Ops
// @Produce     json
// @Success     200 {object} pathsResp
// @Router      /api/v1/ops/paths [GET]
func (h *handler) ListPaths(c *gin.Context) {
	response.OK(c, pathsResp{Paths: h.uc.ListPaths(c.Request.Context())})
}

// ListRoutes godoc
// @Summary     List routes
// @Tags        Ops
// @Produce     json
// @Success     200 {object} routesResp
// @Router      /api/v1/ops/routes [GET]
func (h *handler) ListRoutes(c *gin.Context) {
	response.OK(c, routesResp{Routes: h.uc.ListRoutes(c.Request.Context())})
}

// ListAvailableDrivers godoc
// @Summary     List available drivers
// @Tags        Ops
// @Produce     json
// @Success     200 {object} driversResp
// @Router      /api/v1/ops/drivers [GET]
func (h *handler) ListAvailableDrivers(c *gin.Context) {
	response.OK(c, driversResp{Drivers: h.uc.ListAvailableDrivers(c.Request.Context())})
}
