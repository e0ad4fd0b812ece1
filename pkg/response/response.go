package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "somni-voice-assistant/pkg/errors"
)

// OK sends 200 JSON with body as-is. Bodies carry their own success flag.
func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Error sends a failure envelope with the given status code and message.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, NewErrorResp(message))
}

// FromError sends a failure envelope whose status and message derive from
// the error kind.
func FromError(c *gin.Context, err error) {
	kind := pkgErrors.KindOf(err)
	Error(c, pkgErrors.HTTPStatus(kind), pkgErrors.Message(err))
}

// InternalError sends 500 with the generic message; err stays in the logs.
func InternalError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, DefaultErrorMessage)
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, MessageTooManyRequests)
}
