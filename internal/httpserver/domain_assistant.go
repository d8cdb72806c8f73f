package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "movi-ops-console/internal/assistant/delivery/http"
	"movi-ops-console/internal/assistant/session"
	assistantUC "movi-ops-console/internal/assistant/usecase"
)

// setupAssistantDomain initializes the assistant domain and registers its routes.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Session store
	store := session.NewStore(srv.assistantCfg.SessionCap, srv.assistantCfg.SessionTTL)

	// 2. UseCase
	uc := assistantUC.New(srv.l, srv.transit, srv.speech, store, srv.assistantCfg.DispatchTimeout)

	// 3. HTTP Handler
	h := assistantHTTP.New(srv.l, uc)

	// 4. Routes: /api/v1/assistant
	assistantHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
