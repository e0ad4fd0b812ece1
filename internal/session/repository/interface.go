package repository

import (
	"context"

	"somni-voice-assistant/internal/session"
)

// Repository is the keyed store of conversation sessions. Implementations
// must be safe for concurrent use.
type Repository interface {
	// ResolveOrCreate returns the session for id, or a new session under a
	// freshly minted id when id is empty or unknown. created reports which.
	ResolveOrCreate(ctx context.Context, id string) (s *session.Session, created bool, err error)

	// Acquire is ResolveOrCreate followed by taking the session lock. The
	// returned release func is idempotent and must be called.
	Acquire(ctx context.Context, id string) (s *session.Session, created bool, release func(), err error)

	// Get returns an existing session without creating one.
	Get(ctx context.Context, id string) (*session.Session, error)

	Delete(ctx context.Context, id string) error
	Count() int
}
