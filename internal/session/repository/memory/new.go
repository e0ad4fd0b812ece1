package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"somni-voice-assistant/internal/session"
	"somni-voice-assistant/internal/session/repository"
	"somni-voice-assistant/pkg/log"
)

const (
	defaultMaxSessions = 10000
	defaultTTL         = 24 * time.Hour
)

// implRepository keeps sessions in process memory. Idle sessions expire
// after the TTL; the least recently used one is dropped at capacity.
type implRepository struct {
	sessions     *expirable.LRU[string, *session.Session]
	systemPrompt string
	l            log.Logger
	now          func() time.Time
	newID        func() string
}

// New creates an in-memory session repository.
func New(l log.Logger, opt repository.Options) *implRepository {
	if opt.MaxSessions <= 0 {
		opt.MaxSessions = defaultMaxSessions
	}
	if opt.TTL <= 0 {
		opt.TTL = defaultTTL
	}

	r := &implRepository{
		systemPrompt: opt.SystemPrompt,
		l:            l,
		now:          time.Now,
		newID:        uuid.NewString,
	}
	r.sessions = expirable.NewLRU[string, *session.Session](opt.MaxSessions, r.onEvict, opt.TTL)
	return r
}

func (r *implRepository) onEvict(id string, s *session.Session) {
	r.l.Debugf(context.Background(), "session evicted id=%s last_active=%s", id, s.LastActiveAt().Format(time.RFC3339))
}
