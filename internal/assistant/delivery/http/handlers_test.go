package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"movi-ops-console/internal/assistant"
	"movi-ops-console/internal/model"
)

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

type mockUseCase struct {
	startSessionFunc func() (assistant.StartSessionOutput, error)
	submitFunc       func(input assistant.SubmitInput) (assistant.ExchangeOutput, error)
	confirmFunc      func(input assistant.ConfirmInput) (assistant.ExchangeOutput, error)
	historyFunc      func(sessionID string) ([]assistant.Message, error)
	visionFunc       func(input assistant.VisionInput) (assistant.ExchangeOutput, error)
}

func (m *mockUseCase) StartSession(ctx context.Context) (assistant.StartSessionOutput, error) {
	return m.startSessionFunc()
}

func (m *mockUseCase) Submit(ctx context.Context, input assistant.SubmitInput) (assistant.ExchangeOutput, error) {
	return m.submitFunc(input)
}

func (m *mockUseCase) Confirm(ctx context.Context, input assistant.ConfirmInput) (assistant.ExchangeOutput, error) {
	return m.confirmFunc(input)
}

func (m *mockUseCase) History(ctx context.Context, sessionID string) ([]assistant.Message, error) {
	return m.historyFunc(sessionID)
}

func (m *mockUseCase) AnalyzeScreenshot(ctx context.Context, input assistant.VisionInput) (assistant.ExchangeOutput, error) {
	return m.visionFunc(input)
}

func (m *mockUseCase) DefaultPrompts() []string {
	return assistant.DefaultPrompts
}

func newTestRouter(uc assistant.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(&mockLogger{}, uc))
	return r
}

func TestCreateSession(t *testing.T) {
	uc := &mockUseCase{
		startSessionFunc: func() (assistant.StartSessionOutput, error) {
			return assistant.StartSessionOutput{
				SessionID: "s-1",
				Messages: []assistant.Message{
					{ID: "m-1", Role: model.RoleAssistant, Text: assistant.WelcomeText},
				},
			}, nil
		},
	}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/sessions", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data sessionResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.SessionID != "s-1" {
		t.Errorf("unexpected session id: %s", resp.Data.SessionID)
	}
	if len(resp.Data.Messages) != 1 || resp.Data.Messages[0].Text != assistant.WelcomeText {
		t.Errorf("unexpected messages: %+v", resp.Data.Messages)
	}
}

func TestSubmitHandler(t *testing.T) {
	t.Run("dispatches text with parsed page", func(t *testing.T) {
		var got assistant.SubmitInput
		uc := &mockUseCase{
			submitFunc: func(input assistant.SubmitInput) (assistant.ExchangeOutput, error) {
				got = input
				return assistant.ExchangeOutput{Messages: []assistant.Message{
					{ID: "m-1", Role: model.RoleUser, Text: input.Text},
					{ID: "m-2", Role: model.RoleAssistant, Text: "Done."},
				}}, nil
			},
		}
		r := newTestRouter(uc)

		body := `{"text":"show deployments","page":"manageRoute"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/sessions/s-1/messages", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if got.SessionID != "s-1" || got.Text != "show deployments" || got.Page != model.PageManageRoute {
			t.Errorf("unexpected input: %+v", got)
		}
	})

	t.Run("missing text is rejected", func(t *testing.T) {
		uc := &mockUseCase{
			submitFunc: func(input assistant.SubmitInput) (assistant.ExchangeOutput, error) {
				t.Fatal("usecase must not be called")
				return assistant.ExchangeOutput{}, nil
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/sessions/s-1/messages", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown session maps to 404", func(t *testing.T) {
		uc := &mockUseCase{
			submitFunc: func(input assistant.SubmitInput) (assistant.ExchangeOutput, error) {
				return assistant.ExchangeOutput{}, assistant.ErrSessionNotFound
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/sessions/nope/messages", strings.NewReader(`{"text":"trips"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestConfirmHandler(t *testing.T) {
	t.Run("passes path params through", func(t *testing.T) {
		var got assistant.ConfirmInput
		uc := &mockUseCase{
			confirmFunc: func(input assistant.ConfirmInput) (assistant.ExchangeOutput, error) {
				got = input
				return assistant.ExchangeOutput{Messages: []assistant.Message{
					{ID: "m-3", Role: model.RoleUser, Text: assistant.ConfirmUtterance},
					{ID: "m-4", Role: model.RoleAssistant, Text: "Route deactivated."},
				}}, nil
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/sessions/s-1/messages/m-2/confirm", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if got.SessionID != "s-1" || got.MessageID != "m-2" {
			t.Errorf("unexpected input: %+v", got)
		}
	})

	t.Run("not confirmable maps to 400", func(t *testing.T) {
		uc := &mockUseCase{
			confirmFunc: func(input assistant.ConfirmInput) (assistant.ExchangeOutput, error) {
				return assistant.ExchangeOutput{}, assistant.ErrNotConfirmable
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/sessions/s-1/messages/m-2/confirm", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestHistoryHandler(t *testing.T) {
	consequence := &assistant.Consequence{RequiresConfirmation: true, Reason: "Route is live."}
	uc := &mockUseCase{
		historyFunc: func(sessionID string) ([]assistant.Message, error) {
			return []assistant.Message{
				{ID: "m-1", Role: model.RoleAssistant, Text: "Proceed?", Meta: &assistant.MessageMeta{
					DispatchResult: assistant.DispatchResult{Message: "Proceed?", Consequence: consequence},
					IntentPayload:  &assistant.IntentRequest{Intent: assistant.IntentUpdateRouteStatus},
				}},
			}, nil
		},
	}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/assistant/sessions/s-1/messages", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "intentPayload") {
		t.Error("retained intent envelope must not be exposed")
	}

	var resp struct {
		Data historyResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	msg := resp.Data.Messages[0]
	if msg.Meta == nil || msg.Meta.Consequence == nil || !msg.Meta.Consequence.RequiresConfirmation {
		t.Errorf("expected consequence in response, got %+v", msg)
	}
}

func TestVisionHandler(t *testing.T) {
	t.Run("uploads file to usecase", func(t *testing.T) {
		var got assistant.VisionInput
		uc := &mockUseCase{
			visionFunc: func(input assistant.VisionInput) (assistant.ExchangeOutput, error) {
				got = input
				return assistant.ExchangeOutput{Messages: []assistant.Message{
					{ID: "m-1", Role: model.RoleAssistant, Text: "I analysed the screenshot and couldn't match it to a known trip."},
				}}, nil
			},
		}
		r := newTestRouter(uc)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("file", "dashboard.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("fake-png")); err != nil {
			t.Fatalf("write form file: %v", err)
		}
		mw.Close()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/sessions/s-1/vision", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if got.SessionID != "s-1" || got.Filename != "dashboard.png" {
			t.Errorf("unexpected input: session=%s filename=%s", got.SessionID, got.Filename)
		}
	})

	t.Run("missing file is rejected", func(t *testing.T) {
		uc := &mockUseCase{
			visionFunc: func(input assistant.VisionInput) (assistant.ExchangeOutput, error) {
				t.Fatal("usecase must not be called")
				return assistant.ExchangeOutput{}, nil
			},
		}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/sessions/s-1/vision", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestPromptsHandler(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/assistant/prompts", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data promptsResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data.Prompts) != 4 {
		t.Errorf("expected 4 prompts, got %d", len(resp.Data.Prompts))
	}
}
