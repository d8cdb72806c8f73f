package usecase

import (
	"context"
	"fmt"

	"movi-ops-console/internal/assistant"
	"movi-ops-console/internal/model"
)

// AnalyzeScreenshot runs the visual trip lookup and reports the outcome as an
// assistant message. No other state changes; a backend failure becomes a
// single system message.
func (uc implUseCase) AnalyzeScreenshot(ctx context.Context, input assistant.VisionInput) (assistant.ExchangeOutput, error) {
	sess, ok := uc.store.Get(input.SessionID)
	if !ok {
		return assistant.ExchangeOutput{}, assistant.ErrSessionNotFound
	}

	matchCtx, cancel := context.WithTimeout(ctx, uc.dispatchTimeout)
	defer cancel()

	match, err := uc.transit.MatchScreenshot(matchCtx, input.Filename, input.Image)
	if err != nil {
		uc.l.Errorf(ctx, "assistant usecase: vision match failed: %v", err)
		systemMsg := newMessage(model.RoleSystem, assistant.VisionFailureText, nil)
		sess.Append(systemMsg)
		return assistant.ExchangeOutput{Messages: []assistant.Message{systemMsg}}, nil
	}

	var text string
	if match.Match != "" {
		text = fmt.Sprintf("I analysed the screenshot and found a reference to %q with confidence %.0f%%.", match.Match, match.Confidence*100)
	} else {
		text = "I analysed the screenshot and couldn't match it to a known trip."
	}

	replyMsg := newMessage(model.RoleAssistant, text, nil)
	sess.Append(replyMsg)
	uc.speak(text)

	return assistant.ExchangeOutput{Messages: []assistant.Message{replyMsg}}, nil
}
