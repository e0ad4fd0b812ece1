package voice

import (
	"context"
	"fmt"
	"io"
	"os"

	"somni-voice-assistant/internal/audio"
	pkgErrors "somni-voice-assistant/pkg/errors"
	"somni-voice-assistant/pkg/log"
	"somni-voice-assistant/pkg/openai"
)

type synthesizer struct {
	client openai.IOpenAI
	store  ArtifactAllocator
	voice  VoiceProfile
	l      log.Logger
}

// NewSynthesizer wraps the text-to-speech endpoint and writes replies into
// store's served directory.
func NewSynthesizer(client openai.IOpenAI, store ArtifactAllocator, voice VoiceProfile, l log.Logger) Synthesizer {
	if voice.Model == "" {
		voice.Model = openai.DefaultSpeechModel
	}
	if voice.Voice == "" {
		voice.Voice = openai.DefaultVoice
	}
	if voice.Format == "" {
		voice.Format = openai.DefaultSpeechFormat
	}
	if voice.Speed == 0 {
		voice.Speed = 1.0
	}
	return &synthesizer{client: client, store: store, voice: voice, l: l}
}

func (s *synthesizer) Synthesize(ctx context.Context, sessionID, text string) (*audio.Artifact, error) {
	if s.voice.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.voice.Timeout)
		defer cancel()
	}

	art, err := s.store.OutputArtifact(sessionID, s.voice.Format)
	if err != nil {
		return nil, pkgErrors.Synthesis(msgSynthesisFailed, err)
	}

	body, err := s.client.Speak(ctx, openai.SpeechRequest{
		Model:  s.voice.Model,
		Voice:  s.voice.Voice,
		Input:  text,
		Speed:  s.voice.Speed,
		Format: s.voice.Format,
	})
	if err != nil {
		s.l.Warnf(ctx, "voice.Synthesize: %v", err)
		return nil, pkgErrors.Synthesis(msgSynthesisFailed, err)
	}
	defer body.Close()

	n, err := writeArtifact(art.Path, body)
	if err != nil {
		if rmErr := art.Release(); rmErr != nil {
			s.l.Warnf(ctx, "voice.Synthesize: remove partial %s: %v", art.Path, rmErr)
		}
		s.l.Warnf(ctx, "voice.Synthesize: %v", err)
		return nil, pkgErrors.Synthesis(msgSynthesisFailed, err)
	}
	if n == 0 {
		_ = art.Release()
		return nil, pkgErrors.Synthesis(msgSynthesisFailed, fmt.Errorf("empty audio stream"))
	}

	art.Size = n
	return art, nil
}

func writeArtifact(path string, r io.Reader) (int64, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	n, copyErr := io.Copy(f, r)
	closeErr := f.Close()
	if copyErr != nil {
		return n, fmt.Errorf("write %s: %w", path, copyErr)
	}
	if closeErr != nil {
		return n, fmt.Errorf("close %s: %w", path, closeErr)
	}
	return n, nil
}
