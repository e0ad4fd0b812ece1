package http

import (
	"github.com/gin-gonic/gin"

	"somni-voice-assistant/internal/conversation"
	"somni-voice-assistant/pkg/response"
)

// TranscribeAudio godoc
// @Summary     Transcribe a recorded clip
// @Description Validates an uploaded clip and returns its transcript. History is not changed; send the text to /process_message.
// @Tags        Conversation
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio      formData file   true  "Recorded audio"
// @Param       session_id formData string false "Session id; a new one is issued when empty or unknown"
// @Success     200 {object} transcribeResp
// @Failure     400 {object} response.Resp "No file, or audio too small or too large"
// @Failure     502 {object} response.Resp "Transcription failed or no speech detected"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /transcribe_audio [POST]
func (h *handler) TranscribeAudio(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUploadReq(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	defer req.close()

	out, err := h.uc.Transcribe(ctx, conversation.TranscribeInput{
		SessionID: req.SessionID,
		Audio:     req.File,
		MIME:      req.MIME,
		Filename:  req.Filename,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, transcribeResp{Text: out.Text, SessionID: out.SessionID, Success: true})
}

// ProcessMessage godoc
// @Summary     Run one conversation turn
// @Description Appends the message, generates a reply and optionally synthesizes it. A synthesis failure still returns success with audio_error set.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body processMessageReq true "Turn input"
// @Success     200 {object} turnResp
// @Failure     400 {object} turnResp "Empty message"
// @Failure     502 {object} turnResp "Generation failed"
// @Failure     500 {object} turnResp "Internal Server Error"
// @Router      /process_message [POST]
func (h *handler) ProcessMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	res, err := h.uc.ProcessTurn(ctx, req.toInput())
	if err != nil {
		h.turnError(c, res, err)
		return
	}

	response.OK(c, newTurnResp(res))
}

// VoiceTurn godoc
// @Summary     Transcribe a clip and answer it
// @Description Single-request voice turn: transcription, generation and optional synthesis.
// @Tags        Conversation
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio          formData file   true  "Recorded audio"
// @Param       session_id     formData string false "Session id"
// @Param       generate_audio formData bool   false "Synthesize the reply (default true)"
// @Success     200 {object} voiceResp
// @Failure     400 {object} voiceResp "Invalid upload"
// @Failure     502 {object} voiceResp "Transcription or generation failed"
// @Failure     500 {object} voiceResp "Internal Server Error"
// @Router      /api/voice [POST]
func (h *handler) VoiceTurn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUploadReq(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	defer req.close()

	out, err := h.uc.VoiceTurn(ctx, conversation.VoiceTurnInput{
		SessionID:     req.SessionID,
		Audio:         req.File,
		MIME:          req.MIME,
		Filename:      req.Filename,
		GenerateAudio: req.GenerateAudio,
	})
	if err != nil {
		status, msg := h.mapError(ctx, err)
		resp := newTurnResp(out.Turn)
		resp.Success, resp.Error = false, msg
		c.JSON(status, voiceResp{Transcript: out.Transcript, turnResp: resp})
		return
	}

	response.OK(c, voiceResp{Transcript: out.Transcript, turnResp: newTurnResp(out.Turn)})
}

// UpdateSleepPattern godoc
// @Summary     Store sleep data for a session
// @Description Partial update; omitted fields keep their value. Times are HH:MM, quality 1-5.
// @Tags        Sleep
// @Accept      json
// @Produce     json
// @Param       body body sleepPatternReq true "Sleep data"
// @Success     200 {object} sleepPatternResp
// @Failure     400 {object} response.Resp "Invalid fields or unknown session"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/sleep_pattern [POST]
func (h *handler) UpdateSleepPattern(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSleepPatternReq(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	out, err := h.uc.UpdateSleepPattern(ctx, req.toInput())
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, newSleepPatternResp(out))
}

// GetSleepAnalysis godoc
// @Summary     Analyze a session's sleep data
// @Tags        Sleep
// @Produce     json
// @Param       session_id query string true "Session id"
// @Success     200 {object} sleepAnalysisResp
// @Failure     400 {object} response.Resp "Missing session id"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/sleep_analysis [GET]
func (h *handler) GetSleepAnalysis(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.GetSleepAnalysis(ctx, c.Query("session_id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, newSleepAnalysisResp(out))
}

// Health godoc
// @Summary     Health Check
// @Description Reports provider availability and the number of live sessions.
// @Tags        Health
// @Produce     json
// @Success     200 {object} healthResp
// @Router      /health [get]
func (h *handler) Health(c *gin.Context) {
	response.OK(c, newHealthResp(h.uc.Health(c.Request.Context())))
}

// turnError writes a failed turn, keeping the session id so the client can
// continue the same conversation.
func (h *handler) turnError(c *gin.Context, res conversation.TurnResult, err error) {
	status, msg := h.mapError(c.Request.Context(), err)
	resp := newTurnResp(res)
	resp.Success, resp.Error = false, msg
	c.JSON(status, resp)
}
