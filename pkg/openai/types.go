package openai

import (
	"io"
	"time"
)

// Config configures the OpenAI client.
type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// TranscriptionRequest carries one audio clip. Filename drives the format the
// API assumes, so it must carry the canonical extension.
type TranscriptionRequest struct {
	Model    string
	Audio    io.Reader
	Filename string
	MIME     string
}

// SpeechRequest asks for synthesized speech.
type SpeechRequest struct {
	Model  string
	Voice  string
	Input  string
	Speed  float64
	Format string
}

// ChatMessage is one role-tagged message.
type ChatMessage struct {
	Role    string
	Content string
}

// ChatRequest is a non-streaming chat completion request.
type ChatRequest struct {
	Model            string
	Messages         []ChatMessage
	Temperature      float64
	MaxTokens        int
	PresencePenalty  float64
	FrequencyPenalty float64
}

// ChatResponse is the first choice of a completion.
type ChatResponse struct {
	Content      string
	Model        string
	InputTokens  int
	OutputTokens int
}
