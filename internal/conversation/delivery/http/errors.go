package http

import (
	"context"

	"github.com/gin-gonic/gin"

	pkgErrors "somni-voice-assistant/pkg/errors"
	"somni-voice-assistant/pkg/response"
)

// mapError returns the status and user-facing message for err. Untyped
// errors are logged and hidden behind the generic message.
func (h *handler) mapError(ctx context.Context, err error) (int, string) {
	kind := pkgErrors.KindOf(err)
	if kind == pkgErrors.KindUnexpected {
		h.l.Errorf(ctx, "conversation.http: unexpected error: %v", err)
	}
	return pkgErrors.HTTPStatus(kind), pkgErrors.Message(err)
}

func (h *handler) fail(c *gin.Context, err error) {
	status, msg := h.mapError(c.Request.Context(), err)
	response.Error(c, status, msg)
}
