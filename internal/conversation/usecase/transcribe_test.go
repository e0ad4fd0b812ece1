package usecase

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"somni-voice-assistant/internal/audio"
	"somni-voice-assistant/internal/conversation"
	"somni-voice-assistant/internal/voice"
	pkgErrors "somni-voice-assistant/pkg/errors"
)

func clip(n int) *bytes.Reader { return bytes.NewReader(make([]byte, n)) }

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "transient upload must be deleted before the call returns")
}

func TestTranscribe_Success(t *testing.T) {
	f := newFixture(t, 21)

	out, err := f.uc.Transcribe(context.Background(), conversation.TranscribeInput{
		Audio:    clip(500),
		MIME:     "audio/webm;codecs=opus",
		Filename: "recording.webm",
	})
	require.NoError(t, err)
	assert.Equal(t, "I can't sleep", out.Text)
	assert.NotEmpty(t, out.SessionID)

	require.Len(t, f.transcriber.existedAt, 1)
	assert.True(t, f.transcriber.existedAt[0], "artifact must exist while transcribing")
	assertNoTempFiles(t, f.tempDir)

	assert.Len(t, f.history(t, out.SessionID), 1, "transcription alone does not append")
}

func TestTranscribe_ReusesSession(t *testing.T) {
	f := newFixture(t, 21)
	ctx := context.Background()

	turn, err := f.uc.ProcessTurn(ctx, conversation.ProcessTurnInput{Message: "hi"})
	require.NoError(t, err)

	out, err := f.uc.Transcribe(ctx, conversation.TranscribeInput{SessionID: turn.SessionID, Audio: clip(500), Filename: "a.wav"})
	require.NoError(t, err)
	assert.Equal(t, turn.SessionID, out.SessionID)
	assert.Len(t, f.history(t, turn.SessionID), 3)
}

func TestTranscribe_Failures(t *testing.T) {
	tests := []struct {
		name      string
		input     conversation.TranscribeInput
		transErr  error
		wantKind  pkgErrors.Kind
		wantErrIs error
	}{
		{
			name:      "no file",
			input:     conversation.TranscribeInput{Audio: clip(500)},
			wantKind:  pkgErrors.KindValidation,
			wantErrIs: audio.ErrNoFile,
		},
		{
			name:      "too small",
			input:     conversation.TranscribeInput{Audio: clip(99), Filename: "a.webm"},
			wantKind:  pkgErrors.KindValidation,
			wantErrIs: audio.ErrTooSmall,
		},
		{
			name:      "no speech",
			input:     conversation.TranscribeInput{Audio: clip(500), Filename: "a.webm"},
			transErr:  voice.ErrNoSpeech,
			wantKind:  pkgErrors.KindTranscription,
			wantErrIs: voice.ErrNoSpeech,
		},
		{
			name:     "provider failure",
			input:    conversation.TranscribeInput{Audio: clip(500), Filename: "a.webm"},
			transErr: pkgErrors.Transcription("could not transcribe audio", errors.New("503")),
			wantKind: pkgErrors.KindTranscription,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, 21)
			f.transcriber.err = tc.transErr

			_, err := f.uc.Transcribe(context.Background(), tc.input)
			require.Error(t, err)
			assert.Equal(t, tc.wantKind, pkgErrors.KindOf(err))
			if tc.wantErrIs != nil {
				assert.ErrorIs(t, err, tc.wantErrIs)
			}
			assertNoTempFiles(t, f.tempDir)
		})
	}
}

func TestVoiceTurn(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t, 21)

		out, err := f.uc.VoiceTurn(context.Background(), conversation.VoiceTurnInput{
			Audio:         clip(1000),
			Filename:      "a.m4a",
			GenerateAudio: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "I can't sleep", out.Transcript)
		assert.True(t, out.Turn.Success)
		assert.NotEmpty(t, out.Turn.AudioURL)
		assertNoTempFiles(t, f.tempDir)

		h := f.history(t, out.Turn.SessionID)
		require.Len(t, h, 3)
		assert.Equal(t, "I can't sleep", h[1].Content)
	})

	t.Run("transcription failure leaves history untouched", func(t *testing.T) {
		f := newFixture(t, 21)
		ctx := context.Background()

		first, err := f.uc.ProcessTurn(ctx, conversation.ProcessTurnInput{Message: "hi"})
		require.NoError(t, err)

		f.transcriber.err = voice.ErrNoSpeech
		out, err := f.uc.VoiceTurn(ctx, conversation.VoiceTurnInput{SessionID: first.SessionID, Audio: clip(1000), Filename: "a.wav"})
		assert.ErrorIs(t, err, voice.ErrNoSpeech)
		assert.False(t, out.Turn.Success)
		assert.Equal(t, "no speech detected", out.Turn.Error)
		assert.Len(t, f.history(t, first.SessionID), 3)
		assertNoTempFiles(t, f.tempDir)
	})

	t.Run("oversized upload", func(t *testing.T) {
		f := newFixture(t, 21)

		_, err := f.uc.VoiceTurn(context.Background(), conversation.VoiceTurnInput{Audio: clip(25*1024*1024 + 1), Filename: "a.wav"})
		assert.ErrorIs(t, err, audio.ErrTooLarge)
		assert.Zero(t, f.generator.calls)
		assertNoTempFiles(t, f.tempDir)
	})
}
