package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyText       = errors.New("request text is empty")
	ErrSessionNotFound = errors.New("session not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrNotConfirmable  = errors.New("message does not carry a pending confirmation")
)
