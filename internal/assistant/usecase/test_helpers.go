package usecase

import (
	"context"
	"io"
	"time"

	"movi-ops-console/internal/assistant"
	"movi-ops-console/internal/assistant/session"
	"movi-ops-console/pkg/speech"
	"movi-ops-console/pkg/transit"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock transit client with func-field overrides.
type mockTransit struct {
	agentActionFunc     func(req transit.AgentActionRequest) (*transit.AgentActionResponse, error)
	matchScreenshotFunc func(filename string) (*transit.VisionMatch, error)
	agentActionCalls    []transit.AgentActionRequest
}

func (m *mockTransit) AgentAction(ctx context.Context, req transit.AgentActionRequest) (*transit.AgentActionResponse, error) {
	m.agentActionCalls = append(m.agentActionCalls, req)
	if m.agentActionFunc != nil {
		return m.agentActionFunc(req)
	}
	return &transit.AgentActionResponse{Message: "OK"}, nil
}

func (m *mockTransit) MatchScreenshot(ctx context.Context, filename string, image io.Reader) (*transit.VisionMatch, error) {
	if m.matchScreenshotFunc != nil {
		return m.matchScreenshotFunc(filename)
	}
	return &transit.VisionMatch{}, nil
}

func (m *mockTransit) ListTrips(ctx context.Context) ([]transit.Trip, error)             { return nil, nil }
func (m *mockTransit) ListDeployments(ctx context.Context) ([]transit.Deployment, error) { return nil, nil }
func (m *mockTransit) ListVehicles(ctx context.Context) ([]transit.Vehicle, error)       { return nil, nil }
func (m *mockTransit) ListStops(ctx context.Context) ([]transit.Stop, error)             { return nil, nil }
func (m *mockTransit) ListPaths(ctx context.Context) ([]transit.Path, error)             { return nil, nil }
func (m *mockTransit) ListRoutes(ctx context.Context) ([]transit.Route, error)           { return nil, nil }
func (m *mockTransit) ListAvailableDrivers(ctx context.Context) ([]transit.Driver, error) {
	return nil, nil
}

// Mock speech sink recording synthesized texts.
type mockSpeech struct {
	texts chan string
}

func newMockSpeech() *mockSpeech {
	return &mockSpeech{texts: make(chan string, 8)}
}

func (m *mockSpeech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	m.texts <- text
	return []byte("audio"), nil
}

func (m *mockSpeech) spoken(timeout time.Duration) (string, bool) {
	select {
	case text := <-m.texts:
		return text, true
	case <-time.After(timeout):
		return "", false
	}
}

func newTestUseCase(tr *mockTransit, sp *mockSpeech) (*implUseCase, *session.Store) {
	store := session.NewStore(16, time.Minute)
	var snd speech.ISpeech
	if sp != nil {
		snd = sp
	}
	uc := New(&mockLogger{}, tr, snd, store, 5*time.Second)
	return uc, store
}

func startSession(uc *implUseCase) assistant.StartSessionOutput {
	out, _ := uc.StartSession(context.Background())
	return out
}
