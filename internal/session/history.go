package session

import "fmt"

// HistoryManager keeps every session's history within MaxHistory messages,
// always retaining the system message at index 0.
type HistoryManager struct {
	maxHistory int
}

// NewHistoryManager panics on a cap below 2: one system message plus at
// least one turn message must fit.
func NewHistoryManager(maxHistory int) *HistoryManager {
	if maxHistory < 2 {
		panic(fmt.Sprintf("session: max history must be >= 2, got %d", maxHistory))
	}
	return &HistoryManager{maxHistory: maxHistory}
}

// MaxHistory returns the configured cap.
func (h *HistoryManager) MaxHistory() int { return h.maxHistory }

// Append adds a message and evicts the oldest non-system messages beyond the
// cap. Caller must hold the session lock.
func (h *HistoryManager) Append(s *Session, role Role, content string) error {
	if role != RoleUser && role != RoleAssistant {
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	s.history = append(s.history, Message{Role: role, Content: content})

	if over := len(s.history) - h.maxHistory; over > 0 {
		trimmed := make([]Message, 0, h.maxHistory)
		trimmed = append(trimmed, s.history[0])
		trimmed = append(trimmed, s.history[1+over:]...)
		s.history = trimmed
	}
	return nil
}

// AssembleContext returns the prompt for the next generation call. A
// non-empty extra is inserted as a system message right after the original
// one; the session itself is not modified. Caller must hold the session lock.
func (h *HistoryManager) AssembleContext(s *Session, extra string) []Message {
	if extra == "" {
		return s.History()
	}

	out := make([]Message, 0, len(s.history)+1)
	out = append(out, s.history[0])
	out = append(out, Message{Role: RoleSystem, Content: extra})
	out = append(out, s.history[1:]...)
	return out
}
