package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	opsHTTP "movi-ops-console/internal/ops/delivery/http"
	"movi-ops-console/internal/ops/repository/fixture"
	"movi-ops-console/internal/ops/repository/transitsource"
	opsUC "movi-ops-console/internal/ops/usecase"
)

// setupOpsDomain initializes the dashboard read domain and registers its routes.
func (srv HTTPServer) setupOpsDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Sources: live backend with seeded fallback
	live := transitsource.New(srv.transit)
	seed := fixture.New()

	// 2. UseCase
	uc := opsUC.New(srv.l, live, seed, srv.opsCfg.CacheTTL)

	// 3. HTTP Handler
	h := opsHTTP.New(srv.l, uc)

	// 4. Routes: /api/v1/ops
	opsHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Ops domain registered")
	return nil
}
