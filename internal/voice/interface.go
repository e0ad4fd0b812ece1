package voice

import (
	"context"

	"somni-voice-assistant/internal/audio"
	"somni-voice-assistant/internal/session"
)

// Transcriber turns an uploaded clip into text.
//
//go:generate mockery --name Transcriber
type Transcriber interface {
	Transcribe(ctx context.Context, art *audio.Artifact) (string, error)
}

// Generator produces one complete assistant reply for a context window.
//
//go:generate mockery --name Generator
type Generator interface {
	Generate(ctx context.Context, window []session.Message, params GenerationParams) (string, error)
}

// Synthesizer renders reply text into a served audio artifact.
//
//go:generate mockery --name Synthesizer
type Synthesizer interface {
	Synthesize(ctx context.Context, sessionID, text string) (*audio.Artifact, error)
}
