package assistant

import "context"

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// StartSession opens a new conversation session seeded with the welcome message.
	StartSession(ctx context.Context) (StartSessionOutput, error)

	// Submit classifies free operator text, dispatches the resulting intent to
	// the backend agent and appends the exchange to the session log. Transport
	// failures are absorbed into a system-role message, never returned.
	Submit(ctx context.Context, input SubmitInput) (ExchangeOutput, error)

	// Confirm re-dispatches the intent payload captured on a
	// pending-confirmation message with confirmed=true, bypassing the
	// classifier.
	Confirm(ctx context.Context, input ConfirmInput) (ExchangeOutput, error)

	// History returns the ordered conversation log of a session.
	History(ctx context.Context, sessionID string) ([]Message, error)

	// AnalyzeScreenshot runs the vision lookup and appends the outcome as an
	// assistant message. Like Submit, backend failures are absorbed.
	AnalyzeScreenshot(ctx context.Context, input VisionInput) (ExchangeOutput, error)

	// DefaultPrompts returns the canned operator prompts shown on a fresh session.
	DefaultPrompts() []string
}
