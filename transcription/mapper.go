package transcription

import (
	"encoding/json"

	"github.com/kbukum/voicerouter/errors"
)

// MapOptions tunes a single mapping call.
type MapOptions struct {
	// DefaultStatus is used when the provider status is empty or unknown.
	DefaultStatus Status
	// SpeakerLabel formats speaker labels; nil selects DefaultSpeakerLabel.
	SpeakerLabel func(id string) string
}

// Label formats a speaker label with the configured formatter.
func (o MapOptions) Label(id string) string {
	if o.SpeakerLabel == nil {
		return DefaultSpeakerLabel(id)
	}
	return o.SpeakerLabel(id)
}

// Status normalizes a provider status for p using the configured default.
func (o MapOptions) Status(providerStatus string, p Provider) Status {
	return NormalizeStatus(providerStatus, p, o.DefaultStatus)
}

// Mapped is the outcome of mapping one provider payload. Exactly one of Data
// or Failure is set. Failure reports a provider-side failure carried inside
// an otherwise well-formed payload.
type Mapped struct {
	Data     *TranscriptData
	Extended Extended
	Failure  *errors.StandardError
}

// Mapper converts one provider's payloads into the unified schema.
// Map returns an error only when raw cannot be decoded.
type Mapper interface {
	Provider() Provider
	Map(raw json.RawMessage, opts MapOptions) (*Mapped, error)
}
