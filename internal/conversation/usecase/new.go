package usecase

import (
	"context"
	"time"

	"somni-voice-assistant/internal/audio"
	"somni-voice-assistant/internal/conversation"
	"somni-voice-assistant/internal/session"
	"somni-voice-assistant/internal/session/repository"
	"somni-voice-assistant/internal/voice"
	"somni-voice-assistant/pkg/log"
)

// AudioIngestor is satisfied by *audio.Store.
type AudioIngestor interface {
	Accept(ctx context.Context, in audio.AcceptInput) (*audio.Artifact, error)
}

// ProviderStatus is satisfied by *llmprovider.Manager.
type ProviderStatus interface {
	Available() bool
}

// Deps are the collaborators of the turn pipeline.
type Deps struct {
	Repo        repository.Repository
	History     *session.HistoryManager
	Audio       AudioIngestor
	Transcriber voice.Transcriber
	Generator   voice.Generator
	Synthesizer voice.Synthesizer
	Providers   ProviderStatus
	Params      voice.GenerationParams
}

// implUseCase is the private implementation of conversation.UseCase.
type implUseCase struct {
	l           log.Logger
	repo        repository.Repository
	history     *session.HistoryManager
	audio       AudioIngestor
	transcriber voice.Transcriber
	generator   voice.Generator
	synthesizer voice.Synthesizer
	providers   ProviderStatus
	params      voice.GenerationParams
	now         func() time.Time
}

var _ conversation.UseCase = (*implUseCase)(nil)

// New creates the conversation UseCase.
func New(l log.Logger, d Deps) *implUseCase {
	return &implUseCase{
		l:           l,
		repo:        d.Repo,
		history:     d.History,
		audio:       d.Audio,
		transcriber: d.Transcriber,
		generator:   d.Generator,
		synthesizer: d.Synthesizer,
		providers:   d.Providers,
		params:      d.Params,
		now:         time.Now,
	}
}
