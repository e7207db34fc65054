package normalize

import (
	"github.com/kbukum/voicerouter/transcription"
)

// Option configures an Assembler.
type Option func(*Assembler)

// WithDefaultStatus sets the status used when a provider status is empty or
// unrecognized.
func WithDefaultStatus(s transcription.Status) Option {
	return func(a *Assembler) { a.mapOpts.DefaultStatus = s }
}

// WithSpeakerLabel sets the speaker label formatter.
func WithSpeakerLabel(format func(id string) string) Option {
	return func(a *Assembler) { a.mapOpts.SpeakerLabel = format }
}

// WithTracking enables request id and processing time stamping.
func WithTracking(enabled bool) Option {
	return func(a *Assembler) { a.tracking = enabled }
}

// WithRetainRaw controls whether the original payload is copied into the
// response. Enabled by default.
func WithRetainRaw(enabled bool) Option {
	return func(a *Assembler) { a.retainRaw = enabled }
}

// WithMapper registers an additional or replacement mapper.
func WithMapper(m transcription.Mapper) Option {
	return func(a *Assembler) { a.registry.Register(m) }
}

// WithRequestIDGenerator overrides the tracking request id source.
func WithRequestIDGenerator(gen func() string) Option {
	return func(a *Assembler) { a.newID = gen }
}

// CallOption tunes a single Assemble call.
type CallOption func(*call)

type call struct {
	requestID string
	audioHash string
}

// WithAudioHash attaches a caller-computed audio fingerprint to tracking.
func WithAudioHash(hash string) CallOption {
	return func(c *call) { c.audioHash = hash }
}

// WithRequestID sets the tracking request id instead of generating one.
func WithRequestID(id string) CallOption {
	return func(c *call) { c.requestID = id }
}
