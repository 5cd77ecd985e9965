package http

import (
	"strings"

	"emoch-backend/internal/chat"
)

// --- Request DTOs ---

type sendMessageReq struct {
	Message   string `json:"message"    binding:"required,max=4000"`
	SessionID string `json:"session_id" binding:"omitempty,max=128"`
}

func (r sendMessageReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return chat.ErrEmptyMessage
	}
	return nil
}

func (r sendMessageReq) toInput() chat.SendMessageInput {
	return chat.SendMessageInput{
		Message:   r.Message,
		SessionID: r.SessionID,
	}
}

// --- Response DTOs ---

type sendMessageResp struct {
	Reply     string `json:"reply"`
	SessionID string `json:"session_id"`
}

func (h *handler) newSendMessageResp(out chat.SendMessageOutput) sendMessageResp {
	return sendMessageResp{
		Reply:     out.Reply,
		SessionID: out.SessionID,
	}
}
