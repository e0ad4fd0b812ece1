package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Conversation: ConversationConfig{MaxHistory: 21},
		Audio:        AudioConfig{MinBytes: 100, MaxBytes: 25 * 1024 * 1024},
		LLM: LLMConfig{Providers: []ProviderConfig{
			{Name: "openai", Enabled: true, Priority: 1, Model: "gpt-3.5-turbo"},
		}},
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("history too small", func(t *testing.T) {
		cfg := validConfig()
		cfg.Conversation.MaxHistory = 1
		assert.Error(t, cfg.Validate())
	})

	t.Run("inverted audio bounds", func(t *testing.T) {
		cfg := validConfig()
		cfg.Audio.MinBytes = cfg.Audio.MaxBytes + 1
		assert.Error(t, cfg.Validate())
	})

	t.Run("duplicate provider priority", func(t *testing.T) {
		cfg := validConfig()
		cfg.LLM.Providers = append(cfg.LLM.Providers,
			ProviderConfig{Name: "anthropic", Enabled: true, Priority: 1, Model: "claude-3-5-haiku-latest"})
		assert.ErrorContains(t, cfg.Validate(), "duplicate priority")
	})

	t.Run("no enabled provider", func(t *testing.T) {
		cfg := validConfig()
		cfg.LLM.Providers[0].Enabled = false
		assert.ErrorContains(t, cfg.Validate(), "no enabled")
	})
}

func TestGetIntFromMap(t *testing.T) {
	m := map[string]interface{}{"a": 3, "b": float64(4), "c": "x"}
	assert.Equal(t, 3, getIntFromMap(m, "a"))
	assert.Equal(t, 4, getIntFromMap(m, "b"))
	assert.Equal(t, 0, getIntFromMap(m, "c"))
	assert.Equal(t, 0, getIntFromMap(m, "missing"))
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("SOMNI_TEST_KEY", "sk-test")
	assert.Equal(t, "sk-test", expandEnvVar("${SOMNI_TEST_KEY}"))
	assert.Equal(t, "literal", expandEnvVar("literal"))
	assert.Equal(t, "", expandEnvVar(""))
}
