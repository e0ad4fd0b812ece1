package voice

import (
	"context"
	"errors"
	"strings"

	"somni-voice-assistant/internal/session"
	pkgErrors "somni-voice-assistant/pkg/errors"
	"somni-voice-assistant/pkg/llmprovider"
	"somni-voice-assistant/pkg/log"
)

type generator struct {
	llm ContentGenerator
	l   log.Logger
}

// NewGenerator wraps the provider manager. Retry, fallback and the overall
// deadline are the manager's.
func NewGenerator(llm ContentGenerator, l log.Logger) Generator {
	return &generator{llm: llm, l: l}
}

func (g *generator) Generate(ctx context.Context, window []session.Message, params GenerationParams) (string, error) {
	msgs := make([]llmprovider.Message, 0, len(window))
	for _, m := range window {
		msgs = append(msgs, llmprovider.Message{Role: string(m.Role), Content: m.Content})
	}

	resp, err := g.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:         msgs,
		Temperature:      params.Temperature,
		MaxTokens:        params.MaxTokens,
		PresencePenalty:  params.PresencePenalty,
		FrequencyPenalty: params.FrequencyPenalty,
	})
	if err != nil {
		g.l.Errorf(ctx, "voice.Generate: %v", err)
		return "", pkgErrors.Generation(msgGenerationFailed, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", pkgErrors.Generation(msgEmptyReply, errors.New(resp.ProviderName+" returned no text"))
	}

	g.l.Debugf(ctx, "voice.Generate: provider=%s model=%s", resp.ProviderName, resp.ModelName)
	return text, nil
}
