package voice

import (
	"context"
	"io"
	"strings"
	"sync"

	"somni-voice-assistant/pkg/llmprovider"
	"somni-voice-assistant/pkg/openai"
)

type mockOpenAI struct {
	mu sync.Mutex

	transcript    string
	transcribeErr error
	speech        string
	speechBody    io.ReadCloser
	speakErr      error
	block         bool

	transcribeReqs []openai.TranscriptionRequest
	speakReqs      []openai.SpeechRequest
	receivedAudio  []string
}

func (m *mockOpenAI) Transcribe(ctx context.Context, req openai.TranscriptionRequest) (string, error) {
	data, _ := io.ReadAll(req.Audio)
	m.mu.Lock()
	m.transcribeReqs = append(m.transcribeReqs, req)
	m.receivedAudio = append(m.receivedAudio, string(data))
	m.mu.Unlock()

	if m.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return m.transcript, m.transcribeErr
}

func (m *mockOpenAI) Speak(ctx context.Context, req openai.SpeechRequest) (io.ReadCloser, error) {
	m.mu.Lock()
	m.speakReqs = append(m.speakReqs, req)
	m.mu.Unlock()

	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.speakErr != nil {
		return nil, m.speakErr
	}
	if m.speechBody != nil {
		return m.speechBody, nil
	}
	return io.NopCloser(strings.NewReader(m.speech)), nil
}

func (m *mockOpenAI) Chat(ctx context.Context, req openai.ChatRequest) (*openai.ChatResponse, error) {
	return nil, nil
}

type mockContentGenerator struct {
	resp *llmprovider.Response
	err  error
	got  *llmprovider.Request
}

func (m *mockContentGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.got = req
	return m.resp, m.err
}

// failingBody yields some bytes then fails mid-stream.
type failingBody struct{ sent bool }

func (b *failingBody) Read(p []byte) (int, error) {
	if !b.sent {
		b.sent = true
		return copy(p, "partial"), nil
	}
	return 0, io.ErrUnexpectedEOF
}

func (b *failingBody) Close() error { return nil }
