package usecase

import (
	"context"
	"errors"
	"testing"

	"emoch-backend/internal/chat"
	"emoch-backend/internal/chat/repository/memory"
	"emoch-backend/internal/model"
	"emoch-backend/pkg/gemini"
)

func newTestUseCase(store *memory.Store, llm gemini.IGemini, cfg Config) *implUseCase {
	return New(&mockLogger{}, llm, store, cfg)
}

func TestSendMessageValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Message", func(t *testing.T) {
		store := memory.New(&mockLogger{}, memory.Config{})
		uc := newTestUseCase(store, &mockGemini{}, Config{})

		_, err := uc.SendMessage(ctx, chat.SendMessageInput{Message: ""})
		if !errors.Is(err, chat.ErrEmptyMessage) {
			t.Errorf("expected ErrEmptyMessage, got %v", err)
		}
		if store.Len() != 0 {
			t.Errorf("no session state should be touched, store holds %d", store.Len())
		}
	})

	t.Run("Whitespace Only Message", func(t *testing.T) {
		store := memory.New(&mockLogger{}, memory.Config{})
		uc := newTestUseCase(store, &mockGemini{}, Config{})

		_, err := uc.SendMessage(ctx, chat.SendMessageInput{Message: "   \t\n "})
		if !errors.Is(err, chat.ErrEmptyMessage) {
			t.Errorf("expected ErrEmptyMessage, got %v", err)
		}
	})
}

func TestSendMessageConversation(t *testing.T) {
	ctx := context.Background()

	t.Run("First Turn Creates Session", func(t *testing.T) {
		store := memory.New(&mockLogger{}, memory.Config{})
		llm := &mockGemini{
			generateFunc: func(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
				return &gemini.Response{Text: "Hi there"}, nil
			},
		}
		uc := newTestUseCase(store, llm, Config{})

		out, err := uc.SendMessage(ctx, chat.SendMessageInput{Message: "Hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Reply != "Hi there" {
			t.Errorf("expected reply %q, got %q", "Hi there", out.Reply)
		}
		if out.SessionID == "" {
			t.Fatal("expected a session token")
		}

		history := store.Snapshot(ctx, out.SessionID)
		if len(history) != 2 {
			t.Fatalf("expected 2 stored messages, got %d", len(history))
		}
		if history[0].Role != model.RoleUser || history[0].Content != "Hello" {
			t.Errorf("unexpected first message: %+v", history[0])
		}
		if history[1].Role != model.RoleAssistant || history[1].Content != "Hi there" {
			t.Errorf("unexpected second message: %+v", history[1])
		}
	})

	t.Run("Second Turn Sends Normalized History", func(t *testing.T) {
		store := memory.New(&mockLogger{}, memory.Config{})
		var captured *gemini.Request
		replies := []string{"Hi there", "I'm well"}
		llm := &mockGemini{
			generateFunc: func(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
				captured = req
				reply := replies[0]
				replies = replies[1:]
				return &gemini.Response{Text: reply}, nil
			},
		}
		uc := newTestUseCase(store, llm, Config{})

		first, err := uc.SendMessage(ctx, chat.SendMessageInput{Message: "Hello"})
		if err != nil {
			t.Fatalf("first turn: %v", err)
		}

		second, err := uc.SendMessage(ctx, chat.SendMessageInput{
			Message:   "How are you?",
			SessionID: first.SessionID,
		})
		if err != nil {
			t.Fatalf("second turn: %v", err)
		}
		if second.SessionID != first.SessionID {
			t.Errorf("token changed between turns: %s -> %s", first.SessionID, second.SessionID)
		}
		if second.Reply != "I'm well" {
			t.Errorf("expected reply %q, got %q", "I'm well", second.Reply)
		}

		// The generator context for the second turn holds the first pair in
		// generator vocabulary plus the new user turn. Nothing is dropped.
		want := []gemini.Message{
			{Role: "user", Text: "Hello"},
			{Role: "model", Text: "Hi there"},
			{Role: "user", Text: "How are you?"},
		}
		if len(captured.Messages) != len(want) {
			t.Fatalf("expected %d context messages, got %d", len(want), len(captured.Messages))
		}
		for i, msg := range want {
			if captured.Messages[i] != msg {
				t.Errorf("context[%d]: expected %+v, got %+v", i, msg, captured.Messages[i])
			}
		}
		if captured.SystemInstruction == "" {
			t.Error("expected system instruction to be set")
		}

		history := store.Snapshot(ctx, first.SessionID)
		if len(history) != 4 {
			t.Fatalf("expected 4 stored messages, got %d", len(history))
		}
		wantStored := []model.Message{
			{Role: model.RoleUser, Content: "Hello"},
			{Role: model.RoleAssistant, Content: "Hi there"},
			{Role: model.RoleUser, Content: "How are you?"},
			{Role: model.RoleAssistant, Content: "I'm well"},
		}
		for i, msg := range wantStored {
			if history[i] != msg {
				t.Errorf("history[%d]: expected %+v, got %+v", i, msg, history[i])
			}
		}
	})

	t.Run("Context Window Caps Generator Input", func(t *testing.T) {
		store := memory.New(&mockLogger{}, memory.Config{})
		var captured *gemini.Request
		llm := &mockGemini{
			generateFunc: func(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
				captured = req
				return &gemini.Response{Text: "ok"}, nil
			},
		}
		uc := newTestUseCase(store, llm, Config{ContextWindow: 4})

		token, _ := store.Resolve(ctx, "")
		for i := 0; i < 10; i++ {
			store.Append(ctx, token,
				model.Message{Role: model.RoleUser, Content: "q"},
				model.Message{Role: model.RoleAssistant, Content: "a"},
			)
		}

		if _, err := uc.SendMessage(ctx, chat.SendMessageInput{Message: "latest", SessionID: token}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// 4 windowed history messages + the new user turn.
		if len(captured.Messages) != 5 {
			t.Fatalf("expected 5 context messages, got %d", len(captured.Messages))
		}
		if last := captured.Messages[4]; last.Role != "user" || last.Text != "latest" {
			t.Errorf("newest user turn must come last, got %+v", last)
		}
	})
}

func TestSendMessageFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("Generator Failure Persists Nothing", func(t *testing.T) {
		store := memory.New(&mockLogger{}, memory.Config{})

		ok := &mockGemini{
			generateFunc: func(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
				return &gemini.Response{Text: "Hi there"}, nil
			},
		}
		first, err := newTestUseCase(store, ok, Config{}).SendMessage(ctx, chat.SendMessageInput{Message: "Hello"})
		if err != nil {
			t.Fatalf("setup turn: %v", err)
		}
		before := store.Snapshot(ctx, first.SessionID)

		failing := &mockGemini{
			generateFunc: func(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
				return nil, gemini.ErrUnavailable
			},
		}
		_, err = newTestUseCase(store, failing, Config{}).SendMessage(ctx, chat.SendMessageInput{
			Message:   "X",
			SessionID: first.SessionID,
		})
		if !errors.Is(err, gemini.ErrUnavailable) {
			t.Fatalf("expected ErrUnavailable, got %v", err)
		}

		after := store.Snapshot(ctx, first.SessionID)
		if len(after) != len(before) {
			t.Fatalf("failed turn mutated history: %d -> %d messages", len(before), len(after))
		}
		for i := range before {
			if before[i] != after[i] {
				t.Errorf("history[%d] changed across failed turn: %+v -> %+v", i, before[i], after[i])
			}
		}
	})

	t.Run("Unknown Stored Role Fails Loudly", func(t *testing.T) {
		store := memory.New(&mockLogger{}, memory.Config{})
		token, _ := store.Resolve(ctx, "")
		store.Append(ctx, token, model.Message{Role: "system", Content: "rogue"})

		called := false
		llm := &mockGemini{
			generateFunc: func(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
				called = true
				return &gemini.Response{Text: "ok"}, nil
			},
		}
		uc := newTestUseCase(store, llm, Config{})

		_, err := uc.SendMessage(ctx, chat.SendMessageInput{Message: "Hello", SessionID: token})
		if !errors.Is(err, chat.ErrUnknownRole) {
			t.Fatalf("expected ErrUnknownRole, got %v", err)
		}
		if called {
			t.Error("generator must not be called with an incomplete context")
		}
	})
}

func TestNormalizeRole(t *testing.T) {
	// The mapping must be total over the closed client vocabulary.
	cases := map[model.Role]string{
		model.RoleUser:      gemini.RoleUser,
		model.RoleAssistant: gemini.RoleModel,
	}
	for role, want := range cases {
		got, err := normalizeRole(role)
		if err != nil {
			t.Errorf("normalizeRole(%q): unexpected error %v", role, err)
		}
		if got != want {
			t.Errorf("normalizeRole(%q): expected %q, got %q", role, want, got)
		}
	}

	if _, err := normalizeRole("ai"); !errors.Is(err, chat.ErrUnknownRole) {
		t.Errorf("expected ErrUnknownRole for unmapped role, got %v", err)
	}
}
