package usecase

import (
	"context"

	"github.com/google/uuid"

	"movi-ops-console/internal/assistant"
	"movi-ops-console/internal/model"
	"movi-ops-console/pkg/transit"
)

// toAgentRequest converts the domain envelope to the backend wire format.
func toAgentRequest(req assistant.IntentRequest) transit.AgentActionRequest {
	return transit.AgentActionRequest{
		Intent:     string(req.Intent),
		Parameters: req.Parameters,
		Context:    transit.AgentContext{CurrentPage: string(req.Context.CurrentPage)},
	}
}

// toDispatchResult converts the backend reply back into the domain shape.
func toDispatchResult(resp *transit.AgentActionResponse) assistant.DispatchResult {
	out := assistant.DispatchResult{
		Message: resp.Message,
		Data:    resp.Data,
	}
	if resp.Consequence != nil {
		out.Consequence = &assistant.Consequence{
			RequiresConfirmation: resp.Consequence.RequiresConfirmation,
			Reason:               resp.Consequence.Reason,
		}
	}
	return out
}

// assistantText picks the operator-facing text for a dispatch result.
func assistantText(result assistant.DispatchResult) string {
	if result.Message == "" {
		return assistant.DoneText
	}
	return result.Message
}

func newMessage(role model.Role, text string, meta *assistant.MessageMeta) assistant.Message {
	return assistant.Message{
		ID:   uuid.NewString(),
		Role: role,
		Text: text,
		Meta: meta,
	}
}

// speak synthesizes text in a detached goroutine. Outcomes are observational
// only: failures are logged and never reach the dispatch path.
func (uc implUseCase) speak(text string) {
	if uc.speech == nil {
		return
	}
	go func() {
		// Detached from the request context, which is cancelled once the
		// response is written.
		ctx := context.Background()
		if _, err := uc.speech.Synthesize(ctx, text); err != nil {
			uc.l.Warnf(ctx, "assistant usecase: speech synthesis failed: %v", err)
		}
	}()
}
