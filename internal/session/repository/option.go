package repository

import "time"

// Options configures a session repository.
type Options struct {
	SystemPrompt string
	MaxSessions  int
	TTL          time.Duration
}
