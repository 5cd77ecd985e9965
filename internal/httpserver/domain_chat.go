package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "emoch-backend/internal/chat/delivery/http"
)

// setupChatDomain initializes the chat domain and registers its routes.
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := chatHTTP.New(srv.l, srv.chatUC)

	// Registers POST /api/v1/chat/messages
	chatHTTP.RegisterRoutes(api.Group("/chat"), h)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
