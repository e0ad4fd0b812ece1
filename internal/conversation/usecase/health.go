package usecase

import (
	"context"

	"somni-voice-assistant/internal/conversation"
)

// Health reports provider availability and the live session count.
func (uc *implUseCase) Health(ctx context.Context) conversation.HealthOutput {
	out := conversation.HealthOutput{
		Status:             conversation.StatusHealthy,
		Timestamp:          uc.now(),
		ProviderAvailable:  uc.providers != nil && uc.providers.Available(),
		ActiveSessionCount: uc.repo.Count(),
	}
	if !out.ProviderAvailable {
		out.Status = conversation.StatusDegraded
	}
	return out
}
