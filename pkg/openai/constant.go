package openai

const (
	// DefaultTranscriptionModel is the speech-to-text model.
	DefaultTranscriptionModel = "whisper-1"

	// DefaultSpeechModel is the text-to-speech model.
	DefaultSpeechModel = "tts-1"

	// DefaultVoice is the text-to-speech voice.
	DefaultVoice = "alloy"

	// DefaultSpeechFormat is the encoding of synthesized audio.
	DefaultSpeechFormat = "mp3"

	// DefaultChatModel is the generation model.
	DefaultChatModel = "gpt-3.5-turbo"
)
