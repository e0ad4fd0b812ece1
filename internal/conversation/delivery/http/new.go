package http

import (
	"somni-voice-assistant/internal/conversation"
	"somni-voice-assistant/pkg/log"
)

// multipartOverhead covers form boundaries and the other fields on top of
// the audio payload itself.
const multipartOverhead = 1 << 20

type handler struct {
	l              log.Logger
	uc             conversation.UseCase
	maxUploadBytes int64
}

// New creates the HTTP handler for the conversation domain. maxUploadBytes
// caps the audio part of multipart requests.
func New(l log.Logger, uc conversation.UseCase, maxUploadBytes int64) *handler {
	return &handler{
		l:              l,
		uc:             uc,
		maxUploadBytes: maxUploadBytes,
	}
}
