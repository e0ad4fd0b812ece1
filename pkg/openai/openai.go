package openai

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client implements IOpenAI on top of the official SDK.
type Client struct {
	client sdk.Client
}

// New creates a new OpenAI client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	// Retries are owned by the callers (llmprovider.Manager), the SDK only
	// gets what it is told.
	opts = append(opts, option.WithMaxRetries(cfg.MaxRetries))

	return &Client{client: sdk.NewClient(opts...)}, nil
}

// Transcribe sends an audio clip to the transcription endpoint.
func (c *Client) Transcribe(ctx context.Context, req TranscriptionRequest) (string, error) {
	if req.Model == "" {
		req.Model = DefaultTranscriptionModel
	}

	res, err := c.client.Audio.Transcriptions.New(ctx, sdk.AudioTranscriptionNewParams{
		Model: sdk.AudioModel(req.Model),
		File:  sdk.File(req.Audio, req.Filename, req.MIME),
	})
	if err != nil {
		return "", fmt.Errorf("transcription request: %w", err)
	}

	return res.Text, nil
}

// Speak requests synthesized speech. The caller must close the body.
func (c *Client) Speak(ctx context.Context, req SpeechRequest) (io.ReadCloser, error) {
	if req.Model == "" {
		req.Model = DefaultSpeechModel
	}
	if req.Voice == "" {
		req.Voice = DefaultVoice
	}
	if req.Format == "" {
		req.Format = DefaultSpeechFormat
	}

	params := sdk.AudioSpeechNewParams{
		Model:          sdk.SpeechModel(req.Model),
		Voice:          sdk.AudioSpeechNewParamsVoice(req.Voice),
		Input:          req.Input,
		ResponseFormat: sdk.AudioSpeechNewParamsResponseFormat(req.Format),
	}
	if req.Speed > 0 {
		params.Speed = sdk.Float(req.Speed)
	}

	resp, err := c.client.Audio.Speech.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("speech request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("speech request: unexpected status %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// Chat runs a non-streaming chat completion.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		req.Model = DefaultChatModel
	}

	messages := make([]sdk.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			messages = append(messages, sdk.SystemMessage(m.Content))
		case "assistant":
			messages = append(messages, sdk.AssistantMessage(m.Content))
		default:
			messages = append(messages, sdk.UserMessage(m.Content))
		}
	}

	params := sdk.ChatCompletionNewParams{
		Model:    sdk.ChatModel(req.Model),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = sdk.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = sdk.Float(req.Temperature)
	}
	if req.PresencePenalty != 0 {
		params.PresencePenalty = sdk.Float(req.PresencePenalty)
	}
	if req.FrequencyPenalty != 0 {
		params.FrequencyPenalty = sdk.Float(req.FrequencyPenalty)
	}

	res, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(res.Choices) == 0 {
		return nil, fmt.Errorf("no response choices returned")
	}

	return &ChatResponse{
		Content:      res.Choices[0].Message.Content,
		Model:        res.Model,
		InputTokens:  int(res.Usage.PromptTokens),
		OutputTokens: int(res.Usage.CompletionTokens),
	}, nil
}
