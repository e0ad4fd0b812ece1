package voice

import (
	"context"
	"strings"

	"somni-voice-assistant/internal/audio"
	pkgErrors "somni-voice-assistant/pkg/errors"
	"somni-voice-assistant/pkg/log"
	"somni-voice-assistant/pkg/openai"
)

type transcriber struct {
	client openai.IOpenAI
	cfg    TranscriberConfig
	l      log.Logger
}

// NewTranscriber wraps the speech-to-text endpoint.
func NewTranscriber(client openai.IOpenAI, cfg TranscriberConfig, l log.Logger) Transcriber {
	if cfg.Model == "" {
		cfg.Model = openai.DefaultTranscriptionModel
	}
	return &transcriber{client: client, cfg: cfg, l: l}
}

func (t *transcriber) Transcribe(ctx context.Context, art *audio.Artifact) (string, error) {
	if t.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.cfg.Timeout)
		defer cancel()
	}

	f, err := art.Open()
	if err != nil {
		return "", pkgErrors.Transcription(msgTranscriptionFailed, err)
	}
	defer f.Close()

	text, err := t.client.Transcribe(ctx, openai.TranscriptionRequest{
		Model: t.cfg.Model,
		Audio: f,
		// The API infers the codec from the extension.
		Filename: "audio." + art.Format,
		MIME:     art.MIME(),
	})
	if err != nil {
		t.l.Warnf(ctx, "voice.Transcribe: %v", err)
		return "", pkgErrors.Transcription(msgTranscriptionFailed, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoSpeech
	}
	return text, nil
}
