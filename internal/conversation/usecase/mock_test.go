package usecase

import (
	"context"
	"os"
	"sync"

	"somni-voice-assistant/internal/audio"
	"somni-voice-assistant/internal/session"
	"somni-voice-assistant/internal/voice"
)

type mockTranscriber struct {
	text string
	err  error

	mu        sync.Mutex
	paths     []string
	existedAt []bool
}

func (m *mockTranscriber) Transcribe(ctx context.Context, art *audio.Artifact) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paths = append(m.paths, art.Path)
	_, statErr := os.Stat(art.Path)
	m.existedAt = append(m.existedAt, statErr == nil)
	return m.text, m.err
}

type mockGenerator struct {
	reply string
	// errs are returned for the first len(errs) calls, in order.
	errs []error

	mu      sync.Mutex
	calls   int
	windows [][]session.Message
	params  []voice.GenerationParams
}

func (m *mockGenerator) Generate(ctx context.Context, window []session.Message, params voice.GenerationParams) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.windows = append(m.windows, window)
	m.params = append(m.params, params)
	i := m.calls
	m.calls++
	if i < len(m.errs) && m.errs[i] != nil {
		return "", m.errs[i]
	}
	return m.reply, nil
}

func (m *mockGenerator) lastWindow() []session.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.windows[len(m.windows)-1]
}

type mockSynthesizer struct {
	err   error
	calls int
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, sessionID, text string) (*audio.Artifact, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &audio.Artifact{Path: "/tmp/out.mp3", Format: "mp3", URL: "/static/audio/response_" + sessionID + ".mp3"}, nil
}

type mockProviders struct{ available bool }

func (m mockProviders) Available() bool { return m.available }
