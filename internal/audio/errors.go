package audio

import pkgErrors "somni-voice-assistant/pkg/errors"

var (
	ErrNoFile   = pkgErrors.Validation("no file selected")
	ErrTooSmall = pkgErrors.Validation("audio too small or empty")
	ErrTooLarge = pkgErrors.Validation("audio too large")
)
