package usecase

import (
	"time"

	"movi-ops-console/internal/assistant"
	"movi-ops-console/internal/assistant/session"
	pkgLog "movi-ops-console/pkg/log"
	"movi-ops-console/pkg/speech"
	"movi-ops-console/pkg/transit"
)

type implUseCase struct {
	l               pkgLog.Logger
	transit         transit.ITransit
	speech          speech.ISpeech
	store           *session.Store
	dispatchTimeout time.Duration
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase instance. speechClient may be nil; the
// assistant then runs silent.
func New(
	l pkgLog.Logger,
	transitClient transit.ITransit,
	speechClient speech.ISpeech,
	store *session.Store,
	dispatchTimeout time.Duration,
) *implUseCase {
	if dispatchTimeout <= 0 {
		dispatchTimeout = 30 * time.Second
	}
	return &implUseCase{
		l:               l,
		transit:         transitClient,
		speech:          speechClient,
		store:           store,
		dispatchTimeout: dispatchTimeout,
	}
}
