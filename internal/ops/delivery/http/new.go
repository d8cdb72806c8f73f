package http

import (
	"github.com/gin-gonic/gin"

	"movi-ops-console/internal/ops"
	"movi-ops-console/pkg/log"
)

// Handler is the public interface for the ops HTTP delivery layer.
type Handler interface {
	ListTrips(c *gin.Context)
	ListDeployments(c *gin.Context)
	ListVehicles(c *gin.Context)
	ListStops(c *gin.Context)
	ListPaths(c *gin.Context)
	ListRoutes(c *gin.Context)
	ListAvailableDrivers(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc ops.UseCase
}

// New creates a new HTTP handler for the ops domain.
func New(l log.Logger, uc ops.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
