package audio

import (
	"mime"
	"path/filepath"
	"strings"
)

const DefaultFormat = "webm"

// mimeToFormat maps declared content types to canonical extensions.
var mimeToFormat = map[string]string{
	"audio/wav":    "wav",
	"audio/wave":   "wav",
	"audio/x-wav":  "wav",
	"audio/webm":   "webm",
	"video/webm":   "webm",
	"audio/mpeg":   "mp3",
	"audio/mp3":    "mp3",
	"audio/mpga":   "mpga",
	"audio/mp4":    "m4a",
	"audio/m4a":    "m4a",
	"audio/x-m4a":  "m4a",
	"video/mp4":    "mp4",
	"audio/ogg":    "ogg",
	"audio/oga":    "oga",
	"audio/flac":   "flac",
	"audio/x-flac": "flac",
}

// allowedFormats are the extensions the transcription service accepts.
var allowedFormats = map[string]bool{
	"wav": true, "webm": true, "mp3": true, "m4a": true, "ogg": true,
	"flac": true, "mpga": true, "mp4": true, "oga": true,
}

var formatToMIME = map[string]string{
	"wav":  "audio/wav",
	"webm": "audio/webm",
	"mp3":  "audio/mpeg",
	"mpga": "audio/mpeg",
	"m4a":  "audio/mp4",
	"mp4":  "audio/mp4",
	"ogg":  "audio/ogg",
	"oga":  "audio/ogg",
	"flac": "audio/flac",
	"opus": "audio/opus",
	"aac":  "audio/aac",
	"pcm":  "audio/pcm",
}

// ResolveFormat picks the canonical format: declared MIME first, then the
// filename extension, then fallback.
func ResolveFormat(declaredMIME, filename, fallback string) string {
	if declaredMIME != "" {
		mediaType, _, err := mime.ParseMediaType(declaredMIME)
		if err != nil {
			mediaType = strings.ToLower(strings.TrimSpace(strings.SplitN(declaredMIME, ";", 2)[0]))
		}
		if f, ok := mimeToFormat[mediaType]; ok {
			return f
		}
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if allowedFormats[ext] {
		return ext
	}

	if fallback == "" {
		return DefaultFormat
	}
	return fallback
}

func mimeForFormat(format string) string {
	if m, ok := formatToMIME[format]; ok {
		return m
	}
	return "application/octet-stream"
}
