package normalize

import (
	"context"
	"encoding/json"
	"time"

	"github.com/kbukum/voicerouter/logger"
	"github.com/kbukum/voicerouter/observability"
	"github.com/kbukum/voicerouter/transcription"
)

// Middleware wraps a Normalizer with cross-cutting behavior.
type Middleware func(Normalizer) Normalizer

// Chain composes middlewares. The first one is outermost.
//
// Chain(a, b)(n) is equivalent to a(b(n)).
func Chain(middlewares ...Middleware) Middleware {
	return func(inner Normalizer) Normalizer {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}

// Instrumented wraps n with tracing, metrics and logging. A nil metrics
// records spans only; a nil log disables logging.
func Instrumented(n Normalizer, metrics *observability.Metrics, log *logger.Logger) Normalizer {
	mws := []Middleware{WithTelemetry(metrics)}
	if log != nil {
		mws = append(mws, WithLogging(log))
	}
	return Chain(mws...)(n)
}

// observed adapts a per-call hook into a Normalizer wrapper.
type observed struct {
	inner   Normalizer
	observe func(ctx context.Context, p transcription.Provider, run func(context.Context) *transcription.UnifiedTranscriptResponse) *transcription.UnifiedTranscriptResponse
}

func (o *observed) Assemble(ctx context.Context, p transcription.Provider, raw json.RawMessage, success bool, httpStatus int, opts ...CallOption) *transcription.UnifiedTranscriptResponse {
	return o.observe(ctx, p, func(ctx context.Context) *transcription.UnifiedTranscriptResponse {
		return o.inner.Assemble(ctx, p, raw, success, httpStatus, opts...)
	})
}

func (o *observed) AssembleFailure(ctx context.Context, p transcription.Provider, cause any, raw json.RawMessage, opts ...CallOption) *transcription.UnifiedTranscriptResponse {
	return o.observe(ctx, p, func(ctx context.Context) *transcription.UnifiedTranscriptResponse {
		return o.inner.AssembleFailure(ctx, p, cause, raw, opts...)
	})
}

// WithTelemetry records one span and one metrics sample per call.
func WithTelemetry(metrics *observability.Metrics) Middleware {
	return func(inner Normalizer) Normalizer {
		return &observed{inner: inner, observe: func(ctx context.Context, p transcription.Provider, run func(context.Context) *transcription.UnifiedTranscriptResponse) *transcription.UnifiedTranscriptResponse {
			op := observability.NewOperation(observability.SpanNormalize, string(p), logger.RequestIDFromContext(ctx), metrics)
			ctx, span := op.Start(ctx)
			resp := run(ctx)
			outcome, code, err := outcomeOf(resp)
			op.End(ctx, span, outcome, code, err)
			return resp
		}}
	}
}

// WithLogging logs each call at debug on success and warn on failure.
func WithLogging(log *logger.Logger) Middleware {
	return func(inner Normalizer) Normalizer {
		return &observed{inner: inner, observe: func(ctx context.Context, p transcription.Provider, run func(context.Context) *transcription.UnifiedTranscriptResponse) *transcription.UnifiedTranscriptResponse {
			start := time.Now()
			resp := run(ctx)
			fields := logger.MergeWithDuration(logger.Fields(logger.FieldProvider, string(p)), time.Since(start))
			l := log.WithContext(ctx)
			if resp.Success {
				fields[logger.FieldStatus] = string(resp.Data.Status)
				l.Debug("payload normalized", fields)
			} else {
				fields[logger.FieldErrorCode] = string(resp.Error.Code)
				fields[logger.FieldError] = resp.Error.Message
				l.Warn("payload normalization failed", fields)
			}
			return resp
		}}
	}
}

func outcomeOf(resp *transcription.UnifiedTranscriptResponse) (outcome, code string, err error) {
	if resp.Success {
		return observability.OutcomeSuccess, "", nil
	}
	return observability.OutcomeFailure, string(resp.Error.Code), resp.Error
}
