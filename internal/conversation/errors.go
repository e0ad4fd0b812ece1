package conversation

import pkgErrors "somni-voice-assistant/pkg/errors"

var (
	ErrEmptyMessage    = pkgErrors.Validation("no message provided")
	ErrSessionRequired = pkgErrors.Validation("session_id is required")
	ErrSessionNotFound = pkgErrors.Validation("session not found")
	ErrNoSleepFields   = pkgErrors.Validation("no sleep data provided")
	ErrInvalidTime     = pkgErrors.Validation("times must be HH:MM")
	ErrInvalidQuality  = pkgErrors.Validation("quality must be between 1 and 5")
	ErrNotesTooLong    = pkgErrors.Validation("notes too long")
)
