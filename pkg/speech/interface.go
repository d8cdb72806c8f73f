package speech

import "context"

// ISpeech synthesizes operator-facing text to audio. Callers treat it as a
// sink: synthesis failures must never affect the primary dispatch path.
type ISpeech interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
