package usecase

import (
	"context"
	"strings"

	"somni-voice-assistant/internal/conversation"
	"somni-voice-assistant/internal/session"
	pkgErrors "somni-voice-assistant/pkg/errors"
	"somni-voice-assistant/pkg/log"
)

// ProcessTurn runs one text turn under the session lock: append the user
// message, generate a reply, append it, and optionally synthesize it.
//
// A generation failure keeps the user message so the client can retry with
// the conversation intact. A synthesis failure degrades the result to text
// only and is not returned as an error.
func (uc *implUseCase) ProcessTurn(ctx context.Context, input conversation.ProcessTurnInput) (conversation.TurnResult, error) {
	s, created, release, err := uc.repo.Acquire(ctx, input.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessTurn Acquire: %v", err)
		return conversation.TurnResult{}, pkgErrors.Unexpected(err)
	}
	defer release()

	ctx = log.WithSessionID(ctx, s.ID)
	if created {
		uc.l.Infof(ctx, "uc.ProcessTurn: new session")
	}

	res := conversation.TurnResult{SessionID: s.ID}

	message := strings.TrimSpace(input.Message)
	if message == "" {
		res.Error = pkgErrors.Message(conversation.ErrEmptyMessage)
		return res, conversation.ErrEmptyMessage
	}

	if err := uc.history.Append(s, session.RoleUser, message); err != nil {
		uc.l.Errorf(ctx, "uc.ProcessTurn Append user: %v", err)
		return uc.fail(res, pkgErrors.Unexpected(err))
	}

	window := uc.history.AssembleContext(s, sleepSummary(s.SleepPattern))

	reply, err := uc.generator.Generate(ctx, window, uc.params)
	if err != nil {
		uc.l.Warnf(ctx, "uc.ProcessTurn Generate: %v", err)
		if pkgErrors.KindOf(err) != pkgErrors.KindGeneration {
			err = pkgErrors.Generation("could not generate a reply", err)
		}
		return uc.fail(res, err)
	}

	if err := uc.history.Append(s, session.RoleAssistant, reply); err != nil {
		uc.l.Errorf(ctx, "uc.ProcessTurn Append assistant: %v", err)
		return uc.fail(res, pkgErrors.Unexpected(err))
	}
	s.Touch(uc.now())

	res.Success = true
	res.Text = reply

	if input.GenerateAudio {
		art, err := uc.synthesizer.Synthesize(ctx, s.ID, reply)
		if err != nil {
			uc.l.Warnf(ctx, "uc.ProcessTurn Synthesize: %v", err)
			res.AudioError = pkgErrors.Message(err)
		} else {
			res.AudioURL = art.URL
		}
	}

	return res, nil
}

func (uc *implUseCase) fail(res conversation.TurnResult, err error) (conversation.TurnResult, error) {
	res.Success = false
	res.Error = pkgErrors.Message(err)
	return res, err
}
