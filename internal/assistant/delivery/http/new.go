package http

import (
	"github.com/gin-gonic/gin"

	"movi-ops-console/internal/assistant"
	"movi-ops-console/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	CreateSession(c *gin.Context)
	History(c *gin.Context)
	Submit(c *gin.Context)
	Confirm(c *gin.Context)
	Vision(c *gin.Context)
	Prompts(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
