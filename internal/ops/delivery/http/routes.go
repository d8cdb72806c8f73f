package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	ops := rg.Group("/ops")
	{
		ops.GET("/trips", h.ListTrips)
		ops.GET("/deployments", h.ListDeployments)
		ops.GET("/vehicles", h.ListVehicles)
		ops.GET("/stops", h.ListStops)
		ops.GET("/paths", h.ListPaths)
		ops.GET("/routes", h.ListRoutes)
		ops.GET("/drivers", h.ListAvailableDrivers)
	}
}
