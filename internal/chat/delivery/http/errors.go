package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"emoch-backend/internal/chat"
	"emoch-backend/pkg/gemini"
	"emoch-backend/pkg/response"
)

// mapError translates use-case errors into HTTP responses. Every generator
// fault collapses into a generic 503: the specific kind is logged for
// observability, but provider detail (raw bodies, credentials) never reaches
// the caller.
func (h *handler) mapError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, chat.ErrUnknownRole):
		response.Error(c, err, nil)
	case errors.Is(err, gemini.ErrAuthFailure),
		errors.Is(err, gemini.ErrQuotaExceeded),
		errors.Is(err, gemini.ErrUnavailable),
		errors.Is(err, gemini.ErrMalformedResponse):
		h.l.Errorf(ctx, "chat.SendMessage generator: %v", err)
		response.Unavailable(c)
	default:
		h.l.Errorf(ctx, "chat.SendMessage: %v", err)
		response.InternalError(c, err)
	}
}
