package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"somni-voice-assistant/internal/conversation"
	"somni-voice-assistant/internal/session"
	pkgErrors "somni-voice-assistant/pkg/errors"
)

const (
	clockLayout   = "15:04"
	maxNotesChars = 500
)

var qualityLabels = map[int]string{
	1: "poor",
	2: "fair",
	3: "okay",
	4: "good",
	5: "excellent",
}

// UpdateSleepPattern applies a partial update to an existing session's sleep
// data. All fields are validated before anything is written.
func (uc *implUseCase) UpdateSleepPattern(ctx context.Context, input conversation.SleepPatternInput) (conversation.SleepPatternOutput, error) {
	if input.SessionID == "" {
		return conversation.SleepPatternOutput{}, conversation.ErrSessionRequired
	}
	if err := validateSleepInput(input); err != nil {
		return conversation.SleepPatternOutput{}, err
	}

	s, release, err := uc.acquireExisting(ctx, input.SessionID)
	if err != nil {
		return conversation.SleepPatternOutput{}, err
	}
	defer release()

	p := session.SleepPattern{}
	if s.SleepPattern != nil {
		p = *s.SleepPattern
	}
	if input.Bedtime != nil {
		p.Bedtime = strings.TrimSpace(*input.Bedtime)
	}
	if input.WakeTime != nil {
		p.WakeTime = strings.TrimSpace(*input.WakeTime)
	}
	if input.Quality != nil {
		p.Quality = *input.Quality
	}
	if input.Notes != nil {
		p.Notes = strings.TrimSpace(*input.Notes)
	}
	p.UpdatedAt = uc.now()
	s.SleepPattern = &p

	return conversation.SleepPatternOutput{SessionID: s.ID, Pattern: p}, nil
}

// GetSleepAnalysis summarizes the session's sleep data. An unknown session
// reports no data.
func (uc *implUseCase) GetSleepAnalysis(ctx context.Context, sessionID string) (conversation.SleepAnalysisOutput, error) {
	if sessionID == "" {
		return conversation.SleepAnalysisOutput{}, conversation.ErrSessionRequired
	}

	s, release, err := uc.acquireExisting(ctx, sessionID)
	if errors.Is(err, conversation.ErrSessionNotFound) {
		return conversation.SleepAnalysisOutput{SessionID: sessionID}, nil
	}
	if err != nil {
		return conversation.SleepAnalysisOutput{}, err
	}
	defer release()

	out := conversation.SleepAnalysisOutput{SessionID: s.ID}
	if s.SleepPattern == nil {
		return out, nil
	}

	out.HasData = true
	out.Analysis = analyze(*s.SleepPattern)
	return out, nil
}

// acquireExisting locks a session that must already exist.
func (uc *implUseCase) acquireExisting(ctx context.Context, id string) (*session.Session, func(), error) {
	if _, err := uc.repo.Get(ctx, id); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, nil, conversation.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "uc.acquireExisting Get: %v", err)
		return nil, nil, pkgErrors.Unexpected(err)
	}

	s, created, release, err := uc.repo.Acquire(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.acquireExisting Acquire: %v", err)
		return nil, nil, pkgErrors.Unexpected(err)
	}
	if created {
		// Evicted between Get and Acquire.
		release()
		_ = uc.repo.Delete(ctx, s.ID)
		return nil, nil, conversation.ErrSessionNotFound
	}
	return s, release, nil
}

func validateSleepInput(in conversation.SleepPatternInput) error {
	if in.Bedtime == nil && in.WakeTime == nil && in.Quality == nil && in.Notes == nil {
		return conversation.ErrNoSleepFields
	}
	for _, v := range []*string{in.Bedtime, in.WakeTime} {
		if v == nil || strings.TrimSpace(*v) == "" {
			continue
		}
		if _, err := time.Parse(clockLayout, strings.TrimSpace(*v)); err != nil {
			return conversation.ErrInvalidTime
		}
	}
	if in.Quality != nil && (*in.Quality < 1 || *in.Quality > 5) {
		return conversation.ErrInvalidQuality
	}
	if in.Notes != nil && len([]rune(*in.Notes)) > maxNotesChars {
		return conversation.ErrNotesTooLong
	}
	return nil
}

func analyze(p session.SleepPattern) *conversation.SleepAnalysis {
	a := &conversation.SleepAnalysis{
		Bedtime:      p.Bedtime,
		WakeTime:     p.WakeTime,
		Quality:      p.Quality,
		QualityLabel: qualityLabels[p.Quality],
		Notes:        p.Notes,
		UpdatedAt:    p.UpdatedAt,
	}

	hours, ok := sleepDuration(p.Bedtime, p.WakeTime)
	if ok {
		a.DurationHours = hours
	}

	switch {
	case ok && hours < 7:
		a.Recommendations = append(a.Recommendations, "Aim for 7 to 9 hours of sleep; try moving your bedtime a little earlier.")
	case ok && hours > 9:
		a.Recommendations = append(a.Recommendations, "You are sleeping more than 9 hours; a consistent wake time can help you feel more rested.")
	}
	if p.Quality > 0 && p.Quality <= 2 {
		a.Recommendations = append(a.Recommendations, "Try a wind-down routine: dim lights and no screens for the last 30 minutes before bed.")
	}
	if bed, err := time.Parse(clockLayout, p.Bedtime); err == nil && bed.Hour() < 5 {
		a.Recommendations = append(a.Recommendations, "Going to bed after midnight can shift your rhythm; a steady bedtime before midnight may help.")
	}
	if len(a.Recommendations) == 0 {
		a.Recommendations = append(a.Recommendations, "Your routine looks steady. Keep the same bedtime and wake time, even on weekends.")
	}
	return a
}

// sleepDuration returns hours between bedtime and wake time, wrapping past
// midnight.
func sleepDuration(bedtime, wakeTime string) (float64, bool) {
	bed, err := time.Parse(clockLayout, bedtime)
	if err != nil {
		return 0, false
	}
	wake, err := time.Parse(clockLayout, wakeTime)
	if err != nil {
		return 0, false
	}
	d := wake.Sub(bed)
	if d <= 0 {
		d += 24 * time.Hour
	}
	return d.Hours(), true
}

// sleepSummary is the extra context sent to the model when sleep data is set.
func sleepSummary(p *session.SleepPattern) string {
	if p == nil {
		return ""
	}

	var parts []string
	if p.Bedtime != "" {
		parts = append(parts, "usual bedtime "+p.Bedtime)
	}
	if p.WakeTime != "" {
		parts = append(parts, "usual wake time "+p.WakeTime)
	}
	if hours, ok := sleepDuration(p.Bedtime, p.WakeTime); ok {
		parts = append(parts, fmt.Sprintf("about %.1f hours of sleep", hours))
	}
	if label, ok := qualityLabels[p.Quality]; ok {
		parts = append(parts, fmt.Sprintf("sleep quality %d/5 (%s)", p.Quality, label))
	}
	if p.Notes != "" {
		parts = append(parts, "notes: "+p.Notes)
	}
	if len(parts) == 0 {
		return ""
	}
	return "The user shared their sleep pattern: " + strings.Join(parts, "; ") + ". Use it to personalize your guidance."
}
