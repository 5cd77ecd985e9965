package usecase

import (
	"context"
	"strings"

	"emoch-backend/internal/chat"
	"emoch-backend/internal/model"
	"emoch-backend/pkg/gemini"
)

// SendMessage runs one conversation turn.
//
// The session lock is never held across the generator call: history is
// snapshotted before it and appended after it, so a slow generation only
// blocks concurrent turns of the same session for two short critical
// sections. A failed generation persists nothing, which keeps the stored
// history free of orphaned user turns.
func (uc *implUseCase) SendMessage(ctx context.Context, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return chat.SendMessageOutput{}, chat.ErrEmptyMessage
	}

	token, history := uc.repo.Resolve(ctx, input.SessionID)

	if n := len(history); n > uc.cfg.ContextWindow {
		history = history[n-uc.cfg.ContextWindow:]
	}

	// Normalized history plus the new user turn, in call context only; the
	// user turn is not persisted until the generator succeeds.
	messages := make([]gemini.Message, 0, len(history)+1)
	for _, msg := range history {
		role, err := normalizeRole(msg.Role)
		if err != nil {
			uc.l.Errorf(ctx, "uc.SendMessage normalizeRole: %v", err)
			return chat.SendMessageOutput{}, err
		}
		messages = append(messages, gemini.Message{Role: role, Text: msg.Content})
	}
	messages = append(messages, gemini.Message{Role: gemini.RoleUser, Text: input.Message})

	resp, err := uc.llm.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: SystemPrompt,
		Messages:          messages,
		Temperature:       GenTemperature,
		MaxTokens:         GenMaxTokens,
		TopP:              GenTopP,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendMessage GenerateContent: %v", err)
		return chat.SendMessageOutput{}, err
	}

	uc.repo.Append(ctx, token,
		model.Message{Role: model.RoleUser, Content: input.Message},
		model.Message{Role: model.RoleAssistant, Content: resp.Text},
	)

	return chat.SendMessageOutput{Reply: resp.Text, SessionID: token}, nil
}
