package usecase

import (
	"context"
	"strings"

	"movi-ops-console/internal/assistant"
	"movi-ops-console/internal/assistant/intent"
	"movi-ops-console/internal/assistant/session"
	"movi-ops-console/internal/model"
)

// StartSession opens a new conversation seeded with the welcome message.
func (uc implUseCase) StartSession(ctx context.Context) (assistant.StartSessionOutput, error) {
	welcome := newMessage(model.RoleAssistant, assistant.WelcomeText, nil)
	sess := uc.store.Create(welcome)

	uc.l.Infof(ctx, "assistant usecase: session %s started", sess.ID)
	return assistant.StartSessionOutput{
		SessionID: sess.ID,
		Messages:  sess.Messages(),
	}, nil
}

// History returns the ordered conversation log.
func (uc implUseCase) History(ctx context.Context, sessionID string) ([]assistant.Message, error) {
	sess, ok := uc.store.Get(sessionID)
	if !ok {
		return nil, assistant.ErrSessionNotFound
	}
	return sess.Messages(), nil
}

// DefaultPrompts returns the canned operator prompts.
func (uc implUseCase) DefaultPrompts() []string {
	return assistant.DefaultPrompts
}

// Submit classifies the text and runs one dispatch exchange.
func (uc implUseCase) Submit(ctx context.Context, input assistant.SubmitInput) (assistant.ExchangeOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return assistant.ExchangeOutput{}, assistant.ErrEmptyText
	}

	sess, ok := uc.store.Get(input.SessionID)
	if !ok {
		return assistant.ExchangeOutput{}, assistant.ErrSessionNotFound
	}

	payload := intent.Classify(input.Text, input.Page)
	return uc.dispatch(ctx, sess, input.Text, payload), nil
}

// dispatch appends the user message, sends the envelope to the backend agent
// and appends the reply. Transport and backend failures are absorbed into a
// single system-role message; the failed request is discarded, not retried.
func (uc implUseCase) dispatch(ctx context.Context, sess *session.Session, text string, payload assistant.IntentRequest) assistant.ExchangeOutput {
	userMsg := newMessage(model.RoleUser, text, nil)
	sess.Append(userMsg)

	dispatchCtx, cancel := context.WithTimeout(ctx, uc.dispatchTimeout)
	defer cancel()

	resp, err := uc.transit.AgentAction(dispatchCtx, toAgentRequest(payload))
	if err != nil {
		uc.l.Errorf(ctx, "assistant usecase: dispatch of %s failed: %v", payload.Intent, err)
		systemMsg := newMessage(model.RoleSystem, assistant.DispatchFailureText, nil)
		sess.Append(systemMsg)
		return assistant.ExchangeOutput{Messages: []assistant.Message{userMsg, systemMsg}}
	}

	result := toDispatchResult(resp)
	replyText := assistantText(result)

	meta := &assistant.MessageMeta{DispatchResult: result}
	if result.Consequence != nil {
		// Keep the original envelope so a later confirm can replay it with
		// confirmed=true. Only consequence-bearing messages retain it.
		meta.IntentPayload = &payload
	} else {
		uc.speak(replyText)
	}

	replyMsg := newMessage(model.RoleAssistant, replyText, meta)
	sess.Append(replyMsg)

	return assistant.ExchangeOutput{Messages: []assistant.Message{userMsg, replyMsg}}
}
