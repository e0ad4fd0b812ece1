package http

import (
	"somni-voice-assistant/internal/conversation"
	"somni-voice-assistant/pkg/response"
)

// --- Request DTOs ---

type processMessageReq struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	// GenerateAudio defaults to true when omitted.
	GenerateAudio *bool `json:"generate_audio"`
}

func (r processMessageReq) toInput() conversation.ProcessTurnInput {
	return conversation.ProcessTurnInput{
		SessionID:     r.SessionID,
		Message:       r.Message,
		GenerateAudio: r.GenerateAudio == nil || *r.GenerateAudio,
	}
}

type sleepPatternReq struct {
	SessionID string  `json:"session_id"`
	Bedtime   *string `json:"bedtime"`
	WakeTime  *string `json:"wake_time"`
	Quality   *int    `json:"quality"`
	Notes     *string `json:"notes"`
}

func (r sleepPatternReq) toInput() conversation.SleepPatternInput {
	return conversation.SleepPatternInput{
		SessionID: r.SessionID,
		Bedtime:   r.Bedtime,
		WakeTime:  r.WakeTime,
		Quality:   r.Quality,
		Notes:     r.Notes,
	}
}

// --- Response DTOs ---

// turnResp is the envelope the browser client reads after every turn.
type turnResp struct {
	Text       string `json:"text,omitempty"`
	SessionID  string `json:"session_id,omitempty"`
	Success    bool   `json:"success"`
	AudioURL   string `json:"audio_url,omitempty"`
	AudioError string `json:"audio_error,omitempty"`
	Error      string `json:"error,omitempty"`
}

func newTurnResp(r conversation.TurnResult) turnResp {
	return turnResp{
		Text:       r.Text,
		SessionID:  r.SessionID,
		Success:    r.Success,
		AudioURL:   r.AudioURL,
		AudioError: r.AudioError,
		Error:      r.Error,
	}
}

type transcribeResp struct {
	Text      string `json:"text"`
	SessionID string `json:"session_id"`
	Success   bool   `json:"success"`
}

type voiceResp struct {
	Transcript string `json:"transcript,omitempty"`
	turnResp
}

type sleepDataResp struct {
	Bedtime   string            `json:"bedtime,omitempty"`
	WakeTime  string            `json:"wake_time,omitempty"`
	Quality   int               `json:"quality,omitempty"`
	Notes     string            `json:"notes,omitempty"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

type sleepPatternResp struct {
	Success   bool          `json:"success"`
	SessionID string        `json:"session_id"`
	SleepData sleepDataResp `json:"sleep_data"`
}

func newSleepPatternResp(out conversation.SleepPatternOutput) sleepPatternResp {
	return sleepPatternResp{
		Success:   true,
		SessionID: out.SessionID,
		SleepData: sleepDataResp{
			Bedtime:   out.Pattern.Bedtime,
			WakeTime:  out.Pattern.WakeTime,
			Quality:   out.Pattern.Quality,
			Notes:     out.Pattern.Notes,
			UpdatedAt: response.DateTime(out.Pattern.UpdatedAt),
		},
	}
}

type analysisResp struct {
	Bedtime         string            `json:"bedtime,omitempty"`
	WakeTime        string            `json:"wake_time,omitempty"`
	DurationHours   float64           `json:"duration_hours,omitempty"`
	Quality         int               `json:"quality,omitempty"`
	QualityLabel    string            `json:"quality_label,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	Recommendations []string          `json:"recommendations"`
	UpdatedAt       response.DateTime `json:"updated_at"`
}

type sleepAnalysisResp struct {
	Success   bool          `json:"success"`
	SessionID string        `json:"session_id"`
	HasData   bool          `json:"has_data"`
	Analysis  *analysisResp `json:"analysis,omitempty"`
}

func newSleepAnalysisResp(out conversation.SleepAnalysisOutput) sleepAnalysisResp {
	resp := sleepAnalysisResp{Success: true, SessionID: out.SessionID, HasData: out.HasData}
	if a := out.Analysis; a != nil {
		resp.Analysis = &analysisResp{
			Bedtime:         a.Bedtime,
			WakeTime:        a.WakeTime,
			DurationHours:   a.DurationHours,
			Quality:         a.Quality,
			QualityLabel:    a.QualityLabel,
			Notes:           a.Notes,
			Recommendations: a.Recommendations,
			UpdatedAt:       response.DateTime(a.UpdatedAt),
		}
	}
	return resp
}

type healthResp struct {
	Status             string            `json:"status"`
	Timestamp          response.DateTime `json:"timestamp"`
	ProviderAvailable  bool              `json:"provider_available"`
	ActiveSessionCount int               `json:"active_session_count"`
}

func newHealthResp(out conversation.HealthOutput) healthResp {
	return healthResp{
		Status:             out.Status,
		Timestamp:          response.DateTime(out.Timestamp),
		ProviderAvailable:  out.ProviderAvailable,
		ActiveSessionCount: out.ActiveSessionCount,
	}
}
