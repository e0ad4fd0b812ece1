package usecase

import (
	"context"

	"somni-voice-assistant/internal/audio"
	"somni-voice-assistant/internal/conversation"
	pkgErrors "somni-voice-assistant/pkg/errors"
	"somni-voice-assistant/pkg/log"
)

// Transcribe validates and transcribes one clip. History is left untouched;
// the client submits the text as its next turn.
func (uc *implUseCase) Transcribe(ctx context.Context, input conversation.TranscribeInput) (conversation.TranscribeOutput, error) {
	art, err := uc.audio.Accept(ctx, audio.AcceptInput{
		SessionID:    input.SessionID,
		Reader:       input.Audio,
		DeclaredMIME: input.MIME,
		Filename:     input.Filename,
	})
	if err != nil {
		return conversation.TranscribeOutput{}, uc.classify(ctx, "uc.Transcribe Accept", err)
	}
	defer uc.releaseArtifact(ctx, art)

	s, _, err := uc.repo.ResolveOrCreate(ctx, input.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Transcribe ResolveOrCreate: %v", err)
		return conversation.TranscribeOutput{}, pkgErrors.Unexpected(err)
	}
	ctx = log.WithSessionID(ctx, s.ID)

	text, err := uc.transcriber.Transcribe(ctx, art)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Transcribe: %v", err)
		return conversation.TranscribeOutput{SessionID: s.ID}, err
	}

	return conversation.TranscribeOutput{SessionID: s.ID, Text: text}, nil
}

// VoiceTurn transcribes a clip and runs it as a turn. The upload is released
// before generation starts.
func (uc *implUseCase) VoiceTurn(ctx context.Context, input conversation.VoiceTurnInput) (conversation.VoiceTurnOutput, error) {
	art, err := uc.audio.Accept(ctx, audio.AcceptInput{
		SessionID:    input.SessionID,
		Reader:       input.Audio,
		DeclaredMIME: input.MIME,
		Filename:     input.Filename,
	})
	if err != nil {
		err = uc.classify(ctx, "uc.VoiceTurn Accept", err)
		return conversation.VoiceTurnOutput{Turn: conversation.TurnResult{SessionID: input.SessionID, Error: pkgErrors.Message(err)}}, err
	}
	defer uc.releaseArtifact(ctx, art)

	text, err := uc.transcriber.Transcribe(ctx, art)
	uc.releaseArtifact(ctx, art)
	if err != nil {
		uc.l.Warnf(ctx, "uc.VoiceTurn Transcribe: %v", err)
		return conversation.VoiceTurnOutput{Turn: conversation.TurnResult{SessionID: input.SessionID, Error: pkgErrors.Message(err)}}, err
	}

	res, err := uc.ProcessTurn(ctx, conversation.ProcessTurnInput{
		SessionID:     input.SessionID,
		Message:       text,
		GenerateAudio: input.GenerateAudio,
	})
	return conversation.VoiceTurnOutput{Transcript: text, Turn: res}, err
}

func (uc *implUseCase) releaseArtifact(ctx context.Context, art *audio.Artifact) {
	if err := art.Release(); err != nil {
		uc.l.Warnf(ctx, "release audio %s: %v", art.Path, err)
	}
}

// classify keeps typed errors and turns anything else into an unexpected one.
func (uc *implUseCase) classify(ctx context.Context, op string, err error) error {
	if pkgErrors.KindOf(err) != pkgErrors.KindUnexpected {
		return err
	}
	uc.l.Errorf(ctx, "%s: %v", op, err)
	return pkgErrors.Unexpected(err)
}
