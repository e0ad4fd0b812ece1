package conversation

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Turns
	ProcessTurn(ctx context.Context, input ProcessTurnInput) (TurnResult, error)
	Transcribe(ctx context.Context, input TranscribeInput) (TranscribeOutput, error)
	VoiceTurn(ctx context.Context, input VoiceTurnInput) (VoiceTurnOutput, error)

	// Sleep data
	UpdateSleepPattern(ctx context.Context, input SleepPatternInput) (SleepPatternOutput, error)
	GetSleepAnalysis(ctx context.Context, sessionID string) (SleepAnalysisOutput, error)

	Health(ctx context.Context) HealthOutput
}
