package openai

import (
	"context"
	"io"
)

// IOpenAI is the subset of the OpenAI API the assistant relies on.
type IOpenAI interface {
	Transcribe(ctx context.Context, req TranscriptionRequest) (string, error)
	Speak(ctx context.Context, req SpeechRequest) (io.ReadCloser, error)
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}
