package endpoint

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/voicerouter/transcription"
	"github.com/kbukum/voicerouter/webhook"
)

// EventNormalizer turns a raw callback body into a webhook event.
type EventNormalizer interface {
	Normalize(ctx context.Context, raw []byte, hint *transcription.Provider) (*webhook.Event, error)
}

// Webhook returns a handler for provider callbacks. When the route carries a
// :provider parameter it is used as the hint; otherwise the provider is
// detected from the body.
func Webhook(n EventNormalizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var hint *transcription.Provider
		if name := c.Param("provider"); name != "" {
			p, err := transcription.ParseProvider(name)
			if err != nil {
				RespondWithError(c, err)
				return
			}
			hint = &p
		}

		body, ok := readBody(c)
		if !ok {
			return
		}

		ev, err := n.Normalize(c.Request.Context(), body, hint)
		if err != nil {
			RespondWithError(c, err)
			return
		}
		RespondOK(c, ev)
	}
}
