package httpserver

import (
	"context"

	conversationHTTP "somni-voice-assistant/internal/conversation/delivery/http"
)

// setupConversationDomain registers the turn, transcription, sleep and
// health routes.
func (srv *HTTPServer) setupConversationDomain(ctx context.Context) error {
	h := conversationHTTP.New(srv.l, srv.conversationUC, srv.maxUploadBytes)

	conversationHTTP.RegisterRoutes(srv.gin, h, srv.mw)
	srv.gin.GET("/health", h.Health)

	srv.l.Infof(ctx, "Conversation domain registered")
	return nil
}
