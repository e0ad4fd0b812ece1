package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"somni-voice-assistant/config"
	_ "somni-voice-assistant/docs" // Swagger docs
	"somni-voice-assistant/internal/audio"
	"somni-voice-assistant/internal/conversation/usecase"
	"somni-voice-assistant/internal/httpserver"
	"somni-voice-assistant/internal/middleware"
	"somni-voice-assistant/internal/session"
	"somni-voice-assistant/internal/session/repository"
	"somni-voice-assistant/internal/session/repository/memory"
	"somni-voice-assistant/internal/voice"
	"somni-voice-assistant/pkg/llmprovider"
	"somni-voice-assistant/pkg/log"
	"somni-voice-assistant/pkg/openai"
)

// @title       Somni Voice Assistant API
// @description Sleep assistant voice backend: transcription, bounded conversation and speech replies.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Somni voice assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Speech client (transcription + synthesis)
	speechClient, err := openai.New(openai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
		return
	}

	// 4. Generation providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid LLM manager config: ", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, managerCfg, logger)
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	// 5. Session store
	sessionRepo := memory.New(logger, repository.Options{
		SystemPrompt: cfg.Conversation.SystemPrompt,
		MaxSessions:  cfg.Conversation.MaxSessions,
		TTL:          cfg.Conversation.SessionTTL,
	})

	// 6. Audio store and janitor
	audioStore, err := audio.New(logger, audio.Config{
		MinBytes:      cfg.Audio.MinBytes,
		MaxBytes:      cfg.Audio.MaxBytes,
		DefaultFormat: cfg.Audio.DefaultFormat,
		TempDir:       cfg.Audio.TempDir,
		OutputDir:     cfg.Audio.OutputDir,
		PublicPath:    cfg.Audio.PublicPath,
		Retention:     cfg.Audio.Retention,
		CleanupCron:   cfg.Audio.CleanupCron,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize audio store: ", err)
		return
	}
	janitor, err := audio.NewJanitor(audioStore, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize audio janitor: ", err)
		return
	}
	janitor.Sweep(ctx)
	janitor.Start()

	// 7. Voice adapters
	transcriber := voice.NewTranscriber(speechClient, voice.TranscriberConfig{
		Model:   cfg.Transcription.Model,
		Timeout: cfg.Transcription.Timeout,
	}, logger)
	generator := voice.NewGenerator(llmManager, logger)
	synthesizer := voice.NewSynthesizer(speechClient, audioStore, voice.VoiceProfile{
		Model:   cfg.Synthesis.Model,
		Voice:   cfg.Synthesis.Voice,
		Speed:   cfg.Synthesis.Speed,
		Format:  cfg.Synthesis.Format,
		Timeout: cfg.Synthesis.Timeout,
	}, logger)

	// 8. Conversation use case
	conversationUC := usecase.New(logger, usecase.Deps{
		Repo:        sessionRepo,
		History:     session.NewHistoryManager(cfg.Conversation.MaxHistory),
		Audio:       audioStore,
		Transcriber: transcriber,
		Generator:   generator,
		Synthesizer: synthesizer,
		Providers:   llmManager,
		Params: voice.GenerationParams{
			Temperature:      cfg.Generation.Temperature,
			MaxTokens:        cfg.Generation.MaxTokens,
			PresencePenalty:  cfg.Generation.PresencePenalty,
			FrequencyPenalty: cfg.Generation.FrequencyPenalty,
		},
	})

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.New(logger, middleware.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			Burst:          cfg.RateLimit.Burst,
		}),
		ConversationUC:  conversationUC,
		MaxUploadBytes:  cfg.Audio.MaxBytes,
		AudioDir:        cfg.Audio.OutputDir,
		AudioPublicPath: cfg.Audio.PublicPath,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	janitor.Stop(stopCtx)

	logger.Info(ctx, "Server stopped gracefully")
}
