package middleware

import (
	"somni-voice-assistant/pkg/log"
)

// Config configures the shared middleware.
type Config struct {
	RequestsPerMin int
	Burst          int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.RequestsPerMin, cfg.Burst),
	}
}
