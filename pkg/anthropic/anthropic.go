// Package anthropic wraps the Anthropic Messages API for plain-text
// conversations.
package anthropic

import (
	"context"
	"fmt"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	// DefaultModel is used when the request does not name one.
	DefaultModel = "claude-3-5-haiku-latest"

	// DefaultMaxTokens is required by the API; used when the request leaves it zero.
	DefaultMaxTokens = 1024
)

// IAnthropic defines the interface for the Anthropic client.
type IAnthropic interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// Config configures the client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Message is one conversational turn.
type Message struct {
	Role    string
	Content string
}

// Request is a single Messages API call. System carries the instructions,
// Messages only user and assistant turns.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Response is the concatenated text of the reply.
type Response struct {
	Text         string
	InputTokens  int
	OutputTokens int
}

// Client implements IAnthropic.
type Client struct {
	client sdk.Client
	model  string
}

// New creates a new Anthropic client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey), option.WithMaxRetries(0)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &Client{client: sdk.NewClient(opts...), model: cfg.Model}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

// GenerateContent sends the conversation and returns the text reply.
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]sdk.MessageParam, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case "assistant":
			messages = append(messages, sdk.NewAssistantMessage(sdk.NewTextBlock(m.Content)))
		case "user":
			messages = append(messages, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))
		}
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		Messages:  messages,
		MaxTokens: int64(maxTokens),
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = sdk.Float(req.Temperature)
	}

	res, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic: %w", err)
	}

	var sb strings.Builder
	for _, block := range res.Content {
		if b, ok := block.AsAny().(sdk.TextBlock); ok {
			sb.WriteString(b.Text)
		}
	}

	return &Response{
		Text:         sb.String(),
		InputTokens:  int(res.Usage.InputTokens),
		OutputTokens: int(res.Usage.OutputTokens),
	}, nil
}
