package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	assistant := rg.Group("/assistant")
	{
		assistant.GET("/prompts", h.Prompts)

		sessions := assistant.Group("/sessions")
		{
			sessions.POST("", h.CreateSession)
			sessions.GET("/:id/messages", h.History)
			sessions.POST("/:id/messages", h.Submit)
			sessions.POST("/:id/messages/:messageID/confirm", h.Confirm)
			sessions.POST("/:id/vision", h.Vision)
		}
	}
}
