package session

import (
	"context"
	"sync/atomic"
	"time"
)

// Role is the author of a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one immutable entry of a conversation.
type Message struct {
	Role    Role
	Content string
}

// SleepPattern is optional per-session sleep data.
type SleepPattern struct {
	Bedtime   string // HH:MM
	WakeTime  string // HH:MM
	Quality   int    // 1-5, 0 when unset
	Notes     string
	UpdatedAt time.Time
}

// Session is the server-side conversational context of one client.
//
// History and SleepPattern may only be read or written while holding the
// session lock (see Lock). LastActiveAt is safe to read at any time.
type Session struct {
	ID        string
	CreatedAt time.Time

	SleepPattern *SleepPattern

	history    []Message
	lastActive atomic.Int64
	sem        chan struct{}
}

// New creates a session whose history holds exactly the system message.
func New(id, systemPrompt string, now time.Time) *Session {
	s := &Session{
		ID:        id,
		CreatedAt: now,
		history:   []Message{{Role: RoleSystem, Content: systemPrompt}},
		sem:       make(chan struct{}, 1),
	}
	s.lastActive.Store(now.UnixNano())
	return s
}

// Lock takes the session's exclusive lock, giving up when ctx ends.
func (s *Session) Lock(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Unlock releases the lock taken by Lock.
func (s *Session) Unlock() {
	<-s.sem
}

// Touch records activity at now.
func (s *Session) Touch(now time.Time) {
	s.lastActive.Store(now.UnixNano())
}

// LastActiveAt reports the last recorded activity.
func (s *Session) LastActiveAt() time.Time {
	return time.Unix(0, s.lastActive.Load())
}

// History returns a copy of the conversation. Caller must hold the lock.
func (s *Session) History() []Message {
	out := make([]Message, len(s.history))
	copy(out, s.history)
	return out
}

// Len returns the number of messages. Caller must hold the lock.
func (s *Session) Len() int {
	return len(s.history)
}
