package voice

import pkgErrors "somni-voice-assistant/pkg/errors"

const (
	msgTranscriptionFailed = "could not transcribe audio"
	msgNoSpeech            = "no speech detected"
	msgGenerationFailed    = "could not generate a reply"
	msgEmptyReply          = "empty reply from model"
	msgSynthesisFailed     = "speech synthesis failed"
)

// ErrNoSpeech is returned when the transcript is empty.
var ErrNoSpeech = pkgErrors.Transcription(msgNoSpeech, nil)
