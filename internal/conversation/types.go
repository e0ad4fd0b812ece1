package conversation

import (
	"io"
	"time"

	"somni-voice-assistant/internal/session"
)

// --- Turn ---

type ProcessTurnInput struct {
	SessionID     string
	Message       string
	GenerateAudio bool
}

// TurnResult is the outcome of one turn. SessionID is set whenever a session
// was resolved, including on failure. AudioError is only set when the text
// reply succeeded and synthesis did not.
type TurnResult struct {
	SessionID  string
	Success    bool
	Text       string
	AudioURL   string
	AudioError string
	Error      string
}

// --- Transcription ---

type TranscribeInput struct {
	SessionID string
	Audio     io.Reader
	MIME      string
	Filename  string
}

type TranscribeOutput struct {
	SessionID string
	Text      string
}

type VoiceTurnInput struct {
	SessionID     string
	Audio         io.Reader
	MIME          string
	Filename      string
	GenerateAudio bool
}

type VoiceTurnOutput struct {
	Transcript string
	Turn       TurnResult
}

// --- Sleep data ---

// SleepPatternInput is a partial update; nil fields are left unchanged.
type SleepPatternInput struct {
	SessionID string
	Bedtime   *string
	WakeTime  *string
	Quality   *int
	Notes     *string
}

type SleepPatternOutput struct {
	SessionID string
	Pattern   session.SleepPattern
}

type SleepAnalysis struct {
	Bedtime         string
	WakeTime        string
	DurationHours   float64
	Quality         int
	QualityLabel    string
	Notes           string
	Recommendations []string
	UpdatedAt       time.Time
}

type SleepAnalysisOutput struct {
	SessionID string
	HasData   bool
	Analysis  *SleepAnalysis
}

// --- Health ---

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

type HealthOutput struct {
	Status             string
	Timestamp          time.Time
	ProviderAvailable  bool
	ActiveSessionCount int
}
