package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"emoch-backend/internal/chat"
	chatHTTP "emoch-backend/internal/chat/delivery/http"
	"emoch-backend/pkg/gemini"
	"emoch-backend/pkg/response"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockChatUseCase struct {
	output    chat.SendMessageOutput
	err       error
	lastInput chat.SendMessageInput
	calls     int
}

func (m *mockChatUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	m.calls++
	m.lastInput = input
	return m.output, m.err
}

func newTestRouter(uc chat.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := chatHTTP.New(&mockLogger{}, uc)
	chatHTTP.RegisterRoutes(engine.Group("/api/v1/chat"), h)
	return engine
}

func postMessage(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestSendMessageEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockChatUseCase{
			output: chat.SendMessageOutput{Reply: "Hi there", SessionID: "token-1"},
		}
		engine := newTestRouter(uc)

		w := postMessage(t, engine, `{"message": "Hello"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		data, ok := resp.Data.(map[string]interface{})
		if !ok {
			t.Fatalf("unexpected data payload: %v", resp.Data)
		}
		if data["reply"] != "Hi there" || data["session_id"] != "token-1" {
			t.Errorf("unexpected response data: %v", data)
		}
		if uc.lastInput.Message != "Hello" || uc.lastInput.SessionID != "" {
			t.Errorf("unexpected use case input: %+v", uc.lastInput)
		}
	})

	t.Run("Session ID Forwarded", func(t *testing.T) {
		uc := &mockChatUseCase{
			output: chat.SendMessageOutput{Reply: "I'm well", SessionID: "token-1"},
		}
		engine := newTestRouter(uc)

		w := postMessage(t, engine, `{"message": "How are you?", "session_id": "token-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastInput.SessionID != "token-1" {
			t.Errorf("expected session id token-1, got %q", uc.lastInput.SessionID)
		}
	})

	t.Run("Empty Message Rejected Before UseCase", func(t *testing.T) {
		uc := &mockChatUseCase{}
		engine := newTestRouter(uc)

		w := postMessage(t, engine, `{"message": "   "}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if uc.calls != 0 {
			t.Errorf("use case must not be called, got %d calls", uc.calls)
		}
	})

	t.Run("Missing Message Rejected", func(t *testing.T) {
		engine := newTestRouter(&mockChatUseCase{})

		w := postMessage(t, engine, `{"session_id": "token-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Generator Faults Map To 503", func(t *testing.T) {
		for _, genErr := range []error{
			gemini.ErrAuthFailure,
			gemini.ErrQuotaExceeded,
			gemini.ErrUnavailable,
			gemini.ErrMalformedResponse,
		} {
			engine := newTestRouter(&mockChatUseCase{err: genErr})

			w := postMessage(t, engine, `{"message": "X"}`)
			if w.Code != http.StatusServiceUnavailable {
				t.Errorf("%v: expected 503, got %d", genErr, w.Code)
			}

			var resp response.Resp
			json.Unmarshal(w.Body.Bytes(), &resp)
			if resp.Message != response.UnavailableMessage {
				t.Errorf("%v: provider detail leaked to caller: %q", genErr, resp.Message)
			}
		}
	})

	t.Run("Unexpected Error Maps To 500", func(t *testing.T) {
		engine := newTestRouter(&mockChatUseCase{err: context.DeadlineExceeded})

		w := postMessage(t, engine, `{"message": "X"}`)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}
