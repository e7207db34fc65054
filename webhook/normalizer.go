package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/kbukum/voicerouter/errors"
	"github.com/kbukum/voicerouter/logger"
	"github.com/kbukum/voicerouter/observability"
	"github.com/kbukum/voicerouter/transcription"
)

// Normalizer dispatches notifications to provider handlers.
type Normalizer struct {
	handlers []Handler
	mapOpts  transcription.MapOptions
	log      *logger.Logger
	metrics  *observability.Metrics
	now      func() time.Time
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithHandler adds a handler, replacing any existing one for the same
// provider in place. New providers are detected after the built-ins.
func WithHandler(h Handler) Option {
	return func(n *Normalizer) {
		for i, existing := range n.handlers {
			if existing.Provider() == h.Provider() {
				n.handlers[i] = h
				return
			}
		}
		n.handlers = append(n.handlers, h)
	}
}

// WithMapOptions sets the options passed to handlers.
func WithMapOptions(opts transcription.MapOptions) Option {
	return func(n *Normalizer) { n.mapOpts = opts }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(n *Normalizer) { n.log = l }
}

// WithMetrics records a webhook counter per normalized event.
func WithMetrics(m *observability.Metrics) Option {
	return func(n *Normalizer) { n.metrics = m }
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) { n.now = now }
}

// NewNormalizer creates a Normalizer with the built-in handlers.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		handlers: DefaultHandlers(),
		mapOpts:  transcription.MapOptions{DefaultStatus: transcription.StatusQueued},
		log:      logger.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Providers lists the providers with a handler, in detection order.
func (n *Normalizer) Providers() []transcription.Provider {
	out := make([]transcription.Provider, len(n.handlers))
	for i, h := range n.handlers {
		out[i] = h.Provider()
	}
	return out
}

// Normalize parses raw into an Event. hint selects the handler; without it
// the first handler that detects the body wins. Errors are always
// *errors.StandardError.
func (n *Normalizer) Normalize(ctx context.Context, raw []byte, hint *transcription.Provider) (ev *Event, err error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanWebhook)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			ev, err = nil, errors.FromException(r, errors.ErrCodeUnknown, 0)
		}
		n.record(ctx, ev, err)
	}()

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, errors.NewInvalidInput("empty webhook body")
	}
	var body map[string]any
	if err := json.Unmarshal(trimmed, &body); err != nil {
		return nil, errors.NewParse(err)
	}

	h, se := n.handlerFor(body, hint)
	if se != nil {
		return nil, se
	}

	ev, err = h.Parse(json.RawMessage(trimmed), n.mapOpts)
	if err != nil {
		if se, ok := errors.AsStandardError(err); ok {
			return nil, se
		}
		return nil, errors.NewParse(err)
	}

	ev.Provider = h.Provider()
	ev.Raw = json.RawMessage(trimmed)
	ev.Timestamp = n.now().UTC()
	return ev, nil
}

func (n *Normalizer) handlerFor(body map[string]any, hint *transcription.Provider) (Handler, *errors.StandardError) {
	if hint != nil {
		p, err := transcription.ParseProvider(string(*hint))
		if err != nil {
			return nil, errors.NewNotSupported("provider " + string(*hint))
		}
		for _, h := range n.handlers {
			if h.Provider() == p {
				return h, nil
			}
		}
		return nil, errors.NewNotSupported("webhooks for " + string(p))
	}
	for _, h := range n.handlers {
		if h.Detect(body) {
			return h, nil
		}
	}
	return nil, errors.New(errors.ErrCodeNotSupported, "Unrecognized webhook payload", nil)
}

func (n *Normalizer) record(ctx context.Context, ev *Event, err error) {
	l := n.log.WithContext(ctx)
	if err != nil {
		se, _ := errors.AsStandardError(err)
		code := string(errors.ErrCodeUnknown)
		if se != nil {
			code = string(se.Code)
		}
		observability.SetSpanError(ctx, err)
		if n.metrics != nil {
			n.metrics.RecordError(ctx, code, "webhook")
		}
		l.Warn("webhook rejected", logger.Fields(logger.FieldErrorCode, code, logger.FieldError, err.Error()))
		return
	}

	outcome := observability.OutcomeSuccess
	if !ev.Success {
		outcome = observability.OutcomeFailure
	}
	if n.metrics != nil {
		n.metrics.RecordWebhook(ctx, string(ev.Provider), string(ev.EventType), outcome)
	}
	l.Debug("webhook normalized", logger.Fields(
		logger.FieldProvider, string(ev.Provider),
		logger.FieldEventType, string(ev.EventType),
	))
}
