package voice

import (
	"context"
	"time"

	"somni-voice-assistant/internal/audio"
	"somni-voice-assistant/pkg/llmprovider"
)

// GenerationParams are the fixed sampling settings of every reply.
type GenerationParams struct {
	Temperature      float64
	MaxTokens        int
	PresencePenalty  float64
	FrequencyPenalty float64
}

// TranscriberConfig configures the speech-to-text adapter.
type TranscriberConfig struct {
	Model   string
	Timeout time.Duration
}

// VoiceProfile is the fixed identity of synthesized speech.
type VoiceProfile struct {
	Model   string
	Voice   string
	Speed   float64
	Format  string
	Timeout time.Duration
}

// ContentGenerator is satisfied by *llmprovider.Manager.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// ArtifactAllocator is satisfied by *audio.Store.
type ArtifactAllocator interface {
	OutputArtifact(sessionID, format string) (*audio.Artifact, error)
}
