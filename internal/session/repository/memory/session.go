package memory

import (
	"context"
	"sync"

	"somni-voice-assistant/internal/session"
)

// ResolveOrCreate implements repository.Repository.
func (r *implRepository) ResolveOrCreate(ctx context.Context, id string) (*session.Session, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	now := r.now()

	if id != "" {
		if s, ok := r.sessions.Get(id); ok {
			s.Touch(now)
			// Re-adding refreshes the TTL.
			r.sessions.Add(id, s)
			return s, false, nil
		}
	}

	s := session.New(r.newID(), r.systemPrompt, now)
	r.sessions.Add(s.ID, s)
	if id != "" {
		r.l.Infof(ctx, "unknown session %q, created %s", id, s.ID)
	} else {
		r.l.Infof(ctx, "created session %s", s.ID)
	}
	return s, true, nil
}

// Acquire implements repository.Repository.
func (r *implRepository) Acquire(ctx context.Context, id string) (*session.Session, bool, func(), error) {
	s, created, err := r.ResolveOrCreate(ctx, id)
	if err != nil {
		return nil, false, nil, err
	}

	if err := s.Lock(ctx); err != nil {
		return nil, false, nil, err
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			s.Touch(r.now())
			// A session evicted while locked is put back, so a long turn
			// never loses its own result.
			r.sessions.Add(s.ID, s)
			s.Unlock()
		})
	}
	return s, created, release, nil
}

// Get implements repository.Repository.
func (r *implRepository) Get(ctx context.Context, id string) (*session.Session, error) {
	if id == "" {
		return nil, session.ErrSessionNotFound
	}
	s, ok := r.sessions.Get(id)
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return s, nil
}

// Delete implements repository.Repository.
func (r *implRepository) Delete(ctx context.Context, id string) error {
	if !r.sessions.Remove(id) {
		return session.ErrSessionNotFound
	}
	return nil
}

// Count implements repository.Repository.
func (r *implRepository) Count() int {
	return r.sessions.Len()
}
