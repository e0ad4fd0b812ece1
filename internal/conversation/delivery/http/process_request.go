package http

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"somni-voice-assistant/internal/audio"
	pkgErrors "somni-voice-assistant/pkg/errors"
)

var errInvalidBody = pkgErrors.Validation("invalid request body")

// uploadReq is a multipart audio upload. File is nil when the client sent no
// audio part; the use case reports that as "no file selected".
type uploadReq struct {
	SessionID     string
	File          multipart.File
	Filename      string
	MIME          string
	GenerateAudio bool
}

func (r uploadReq) close() {
	if r.File != nil {
		r.File.Close()
	}
}

// processUploadReq reads the "audio" part and form fields. The caller must
// close the request.
func (h *handler) processUploadReq(c *gin.Context) (uploadReq, error) {
	var req uploadReq
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes+multipartOverhead)
	}

	fh, err := c.FormFile("audio")
	if err != nil {
		if isBodyTooLarge(err) {
			return req, audio.ErrTooLarge
		}
		// Missing part or non-multipart body: no file.
		return req, nil
	}

	req.SessionID = strings.TrimSpace(c.PostForm("session_id"))
	req.GenerateAudio = parseBoolDefault(c.PostForm("generate_audio"), true)

	f, err := fh.Open()
	if err != nil {
		return req, pkgErrors.Unexpected(err)
	}
	req.File = f
	req.Filename = fh.Filename
	req.MIME = fh.Header.Get("Content-Type")
	return req, nil
}

func (h *handler) processMessageReq(c *gin.Context) (processMessageReq, error) {
	var req processMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	req.SessionID = strings.TrimSpace(req.SessionID)
	return req, nil
}

func (h *handler) processSleepPatternReq(c *gin.Context) (sleepPatternReq, error) {
	var req sleepPatternReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	req.SessionID = strings.TrimSpace(req.SessionID)
	return req, nil
}

func parseBoolDefault(s string, def bool) bool {
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return v
}

func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	// Some multipart paths flatten the error to text.
	return strings.Contains(err.Error(), "request body too large")
}
