package http

import (
	"github.com/gin-gonic/gin"

	"somni-voice-assistant/internal/middleware"
)

// RegisterRoutes maps the browser client's endpoints. Turn endpoints call
// paid external services and are rate limited per client.
func RegisterRoutes(r gin.IRouter, h *handler, mw middleware.Middleware) {
	r.POST("/transcribe_audio", mw.RateLimit(), h.TranscribeAudio)
	r.POST("/process_message", mw.RateLimit(), h.ProcessMessage)
	r.POST("/process_audio", mw.RateLimit(), h.ProcessMessage)

	api := r.Group("/api")
	{
		api.POST("/voice", mw.RateLimit(), h.VoiceTurn)
		api.POST("/sleep_pattern", h.UpdateSleepPattern)
		api.GET("/sleep_analysis", h.GetSleepAnalysis)
	}
}
