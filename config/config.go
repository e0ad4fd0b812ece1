package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Conversation pipeline
	Conversation  ConversationConfig
	Audio         AudioConfig
	OpenAI        OpenAIConfig
	Transcription TranscriptionConfig
	Synthesis     SynthesisConfig
	Generation    GenerationConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
}

// ConversationConfig bounds the per-session context and the session store.
type ConversationConfig struct {
	MaxHistory   int
	SystemPrompt string
	SessionTTL   time.Duration
	MaxSessions  int
}

// AudioConfig bounds uploads and locates transient and served artifacts.
type AudioConfig struct {
	MinBytes      int64
	MaxBytes      int64
	DefaultFormat string
	TempDir       string
	OutputDir     string
	PublicPath    string
	Retention     time.Duration
	CleanupCron   string
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
}

type TranscriptionConfig struct {
	Model   string
	Timeout time.Duration
}

// SynthesisConfig is the fixed voice profile.
type SynthesisConfig struct {
	Model   string
	Voice   string
	Speed   float64
	Format  string
	Timeout time.Duration
}

// GenerationConfig is the fixed sampling configuration.
type GenerationConfig struct {
	Temperature      float64
	MaxTokens        int
	PresencePenalty  float64
	FrequencyPenalty float64
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

const DefaultSystemPrompt = "You are a soothing sleep assistant. Help the user relax and fall asleep with calming words, guided meditations, or bedtime stories. Speak in a gentle, peaceful tone."

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// Conversation
	cfg.Conversation.MaxHistory = viper.GetInt("conversation.max_history")
	cfg.Conversation.SystemPrompt = viper.GetString("conversation.system_prompt")
	cfg.Conversation.SessionTTL = viper.GetDuration("conversation.session_ttl")
	cfg.Conversation.MaxSessions = viper.GetInt("conversation.max_sessions")

	// Audio
	cfg.Audio.MinBytes = viper.GetInt64("audio.min_bytes")
	cfg.Audio.MaxBytes = viper.GetInt64("audio.max_bytes")
	cfg.Audio.DefaultFormat = viper.GetString("audio.default_format")
	cfg.Audio.TempDir = viper.GetString("audio.temp_dir")
	if cfg.Audio.TempDir == "" {
		cfg.Audio.TempDir = os.TempDir()
	}
	cfg.Audio.OutputDir = viper.GetString("audio.output_dir")
	cfg.Audio.PublicPath = viper.GetString("audio.public_path")
	cfg.Audio.Retention = viper.GetDuration("audio.retention")
	cfg.Audio.CleanupCron = viper.GetString("audio.cleanup_cron")

	// OpenAI (speech-to-text, text-to-speech, default generation provider)
	cfg.OpenAI.APIKey = expandEnvVar(viper.GetString("openai.api_key"))
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")

	cfg.Transcription.Model = viper.GetString("transcription.model")
	cfg.Transcription.Timeout = viper.GetDuration("transcription.timeout")

	cfg.Synthesis.Model = viper.GetString("synthesis.model")
	cfg.Synthesis.Voice = viper.GetString("synthesis.voice")
	cfg.Synthesis.Speed = viper.GetFloat64("synthesis.speed")
	cfg.Synthesis.Format = viper.GetString("synthesis.format")
	cfg.Synthesis.Timeout = viper.GetDuration("synthesis.timeout")

	cfg.Generation.Temperature = viper.GetFloat64("generation.temperature")
	cfg.Generation.MaxTokens = viper.GetInt("generation.max_tokens")
	cfg.Generation.PresencePenalty = viper.GetFloat64("generation.presence_penalty")
	cfg.Generation.FrequencyPenalty = viper.GetFloat64("generation.frequency_penalty")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Without an explicit provider list, generation goes to OpenAI with the
	// same credential used for speech.
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{{
			Name:     "openai",
			Enabled:  true,
			Priority: 1,
			APIKey:   cfg.OpenAI.APIKey,
			BaseURL:  cfg.OpenAI.BaseURL,
			Model:    viper.GetString("llm.default_model"),
			Timeout:  viper.GetString("llm.default_timeout"),
		}}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints that defaults cannot guarantee.
func (cfg *Config) Validate() error {
	if cfg.Conversation.MaxHistory < 2 {
		return fmt.Errorf("conversation.max_history must be at least 2, got %d", cfg.Conversation.MaxHistory)
	}
	if cfg.Audio.MinBytes < 0 || cfg.Audio.MaxBytes <= 0 {
		return fmt.Errorf("audio size bounds must be positive")
	}
	if cfg.Audio.MinBytes > cfg.Audio.MaxBytes {
		return fmt.Errorf("audio.min_bytes (%d) exceeds audio.max_bytes (%d)", cfg.Audio.MinBytes, cfg.Audio.MaxBytes)
	}
	return validateLLMConfig(&cfg.LLM)
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 5000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("rate_limit.burst", 10)

	// Conversation defaults
	viper.SetDefault("conversation.max_history", 21)
	viper.SetDefault("conversation.system_prompt", DefaultSystemPrompt)
	viper.SetDefault("conversation.session_ttl", "24h")
	viper.SetDefault("conversation.max_sessions", 10000)

	// Audio defaults
	viper.SetDefault("audio.min_bytes", 100)
	viper.SetDefault("audio.max_bytes", 25*1024*1024)
	viper.SetDefault("audio.default_format", "webm")
	viper.SetDefault("audio.output_dir", "static/audio")
	viper.SetDefault("audio.public_path", "/static/audio")
	viper.SetDefault("audio.retention", "1h")
	viper.SetDefault("audio.cleanup_cron", "*/10 * * * *")

	// Speech defaults
	viper.SetDefault("transcription.model", "whisper-1")
	viper.SetDefault("transcription.timeout", "30s")
	viper.SetDefault("synthesis.model", "tts-1")
	viper.SetDefault("synthesis.voice", "alloy")
	viper.SetDefault("synthesis.speed", 1.0)
	viper.SetDefault("synthesis.format", "mp3")
	viper.SetDefault("synthesis.timeout", "30s")

	// Generation defaults
	viper.SetDefault("generation.temperature", 0.7)
	viper.SetDefault("generation.max_tokens", 500)
	viper.SetDefault("generation.presence_penalty", 0.0)
	viper.SetDefault("generation.frequency_penalty", 0.0)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
	viper.SetDefault("llm.default_model", "gpt-3.5-turbo")
	viper.SetDefault("llm.default_timeout", "30s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
