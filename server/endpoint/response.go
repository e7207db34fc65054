package endpoint

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/voicerouter/errors"
)

// RespondWithError renders err as the StandardError envelope. Errors that are
// not StandardErrors are converted with FromException.
func RespondWithError(c *gin.Context, err error) {
	se, ok := errors.AsStandardError(err)
	if !ok {
		se = errors.FromException(err, errors.ErrCodeUnknown, 0)
	}
	c.JSON(se.HTTPStatus(), se.ToResponse())
}

// RespondOK sends a 200 response with v as the body.
func RespondOK(c *gin.Context, v any) {
	c.JSON(http.StatusOK, v)
}

// readBody returns the request body or writes the error response and
// reports false.
func readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err == nil {
		return body, true
	}
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		se := errors.NewInvalidInput("request body exceeds the configured limit")
		c.JSON(http.StatusRequestEntityTooLarge, se.ToResponse())
		return nil, false
	}
	RespondWithError(c, errors.NewInvalidInput("failed to read request body: "+err.Error()))
	return nil, false
}
