package llmprovider

import (
	"context"

	"somni-voice-assistant/pkg/anthropic"
	"somni-voice-assistant/pkg/gemini"
	"somni-voice-assistant/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface.
// It also serves OpenAI-compatible endpoints (DeepSeek, Groq, local servers)
// through the base URL.
type OpenAIAdapter struct {
	client openai.IOpenAI
	name   string
	model  string
}

// NewOpenAIAdapter creates a new OpenAI adapter
func NewOpenAIAdapter(client openai.IOpenAI, name, model string) *OpenAIAdapter {
	if name == "" {
		name = "openai"
	}
	return &OpenAIAdapter{client: client, name: name, model: model}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]openai.ChatMessage, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = openai.ChatMessage{Role: m.Role, Content: m.Content}
	}

	resp, err := a.client.Chat(ctx, openai.ChatRequest{
		Model:            a.model,
		Messages:         msgs,
		Temperature:      req.Temperature,
		MaxTokens:        req.MaxTokens,
		PresencePenalty:  req.PresencePenalty,
		FrequencyPenalty: req.FrequencyPenalty,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	return &Response{
		Text:         resp.Content,
		ProviderName: a.name,
		ModelName:    a.model,
		Usage: &Usage{
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
			TotalTokens:  resp.InputTokens + resp.OutputTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string { return a.name }

// Model returns model name
func (a *OpenAIAdapter) Model() string { return a.model }

// AnthropicAdapter adapts pkg/anthropic to llmprovider.Provider interface
type AnthropicAdapter struct {
	client anthropic.IAnthropic
}

// NewAnthropicAdapter creates a new Anthropic adapter
func NewAnthropicAdapter(client anthropic.IAnthropic) *AnthropicAdapter {
	return &AnthropicAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *AnthropicAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	system, turns := splitSystem(req.Messages)

	msgs := make([]anthropic.Message, len(turns))
	for i, m := range turns {
		msgs[i] = anthropic.Message{Role: m.Role, Content: m.Content}
	}

	resp, err := a.client.GenerateContent(ctx, &anthropic.Request{
		System:      system,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: "anthropic", Err: err}
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: "anthropic",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
			TotalTokens:  resp.InputTokens + resp.OutputTokens,
		},
	}, nil
}

// Name returns provider name
func (a *AnthropicAdapter) Name() string { return "anthropic" }

// Model returns model name
func (a *AnthropicAdapter) Model() string { return a.client.Model() }

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	system, turns := splitSystem(req.Messages)

	msgs := make([]gemini.Message, len(turns))
	for i, m := range turns {
		role := gemini.RoleUser
		if m.Role == "assistant" {
			role = gemini.RoleModel
		}
		msgs[i] = gemini.Message{Role: role, Text: m.Content}
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		System:      system,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: "gemini", Err: err}
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
			TotalTokens:  resp.InputTokens + resp.OutputTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string { return "gemini" }

// Model returns model name
func (a *GeminiAdapter) Model() string { return a.client.Model() }
