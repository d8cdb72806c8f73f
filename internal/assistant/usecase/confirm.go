package usecase

import (
	"context"

	"movi-ops-console/internal/assistant"
)

// Confirm replays the envelope captured on a pending-confirmation message
// with confirmed=true under the synthetic "Confirm action" utterance. The
// classifier is bypassed entirely; no deduplication of repeated confirms is
// performed.
func (uc implUseCase) Confirm(ctx context.Context, input assistant.ConfirmInput) (assistant.ExchangeOutput, error) {
	sess, ok := uc.store.Get(input.SessionID)
	if !ok {
		return assistant.ExchangeOutput{}, assistant.ErrSessionNotFound
	}

	msg, ok := sess.Find(input.MessageID)
	if !ok {
		return assistant.ExchangeOutput{}, assistant.ErrMessageNotFound
	}
	if msg.Meta == nil || msg.Meta.Consequence == nil || msg.Meta.IntentPayload == nil {
		return assistant.ExchangeOutput{}, assistant.ErrNotConfirmable
	}

	payload := msg.Meta.IntentPayload.WithConfirmation()
	uc.l.Infof(ctx, "assistant usecase: confirming %s on message %s", payload.Intent, msg.ID)

	return uc.dispatch(ctx, sess, assistant.ConfirmUtterance, payload), nil
}
