package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"movi-ops-console/internal/assistant"
	"movi-ops-console/pkg/response"
)

// respondError translates domain errors into HTTP responses. Unknown errors
// become a generic 500 without leaking details.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrSessionNotFound),
		errors.Is(err, assistant.ErrMessageNotFound):
		response.NotFound(c, err)
	case errors.Is(err, assistant.ErrEmptyText),
		errors.Is(err, assistant.ErrNotConfirmable):
		response.Error(c, err)
	default:
		response.InternalError(c, err)
	}
}
