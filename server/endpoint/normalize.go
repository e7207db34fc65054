package endpoint

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/voicerouter/errors"
	"github.com/kbukum/voicerouter/normalize"
	"github.com/kbukum/voicerouter/transcription"
)

// HeaderAudioHash carries the caller's audio fingerprint into tracking.
const HeaderAudioHash = "X-Audio-Hash"

// Normalize returns a handler mapping a raw provider response to the unified
// envelope. The upstream HTTP status is passed as ?status= (default 200);
// ?success= overrides the success flag, which otherwise follows the status.
// The envelope is returned with 200 whether or not the provider failed.
func Normalize(n normalize.Normalizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := transcription.ParseProvider(c.Param("provider"))
		if err != nil {
			RespondWithError(c, err)
			return
		}

		status := 200
		if raw := c.Query("status"); raw != "" {
			status, err = strconv.Atoi(raw)
			if err != nil || status < 100 || status > 599 {
				RespondWithError(c, errors.NewInvalidInput("status must be an HTTP status code"))
				return
			}
		}
		success := status >= 200 && status < 300
		if raw := c.Query("success"); raw != "" {
			success, err = strconv.ParseBool(raw)
			if err != nil {
				RespondWithError(c, errors.NewInvalidInput("success must be a boolean"))
				return
			}
		}

		body, ok := readBody(c)
		if !ok {
			return
		}

		var opts []normalize.CallOption
		if hash := c.GetHeader(HeaderAudioHash); hash != "" {
			opts = append(opts, normalize.WithAudioHash(hash))
		}
		RespondOK(c, n.Assemble(c.Request.Context(), p, body, success, status, opts...))
	}
}
