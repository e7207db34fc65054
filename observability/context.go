package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Outcomes recorded on spans and metrics.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Operation tracks one normalization call across a span and the metrics.
type Operation struct {
	Provider  string
	SpanName  string
	RequestID string
	StartTime time.Time
	Metrics   *Metrics
}

// NewOperation creates an operation. If metrics is nil, metric recording is
// silently skipped.
func NewOperation(spanName, provider, requestID string, metrics *Metrics) *Operation {
	return &Operation{
		Provider:  provider,
		SpanName:  spanName,
		RequestID: requestID,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

type operationKey struct{}

// WithOperation stores an Operation in the context.
func WithOperation(ctx context.Context, op *Operation) context.Context {
	return context.WithValue(ctx, operationKey{}, op)
}

// OperationFromContext retrieves the Operation from context, or nil.
func OperationFromContext(ctx context.Context) *Operation {
	if op, ok := ctx.Value(operationKey{}).(*Operation); ok {
		return op
	}
	return nil
}

// Start opens the operation span and bumps the in-progress gauge.
func (op *Operation) Start(ctx context.Context) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, op.SpanName)
	span.SetAttributes(attribute.String(AttrProvider, op.Provider))
	if op.RequestID != "" {
		span.SetAttributes(attribute.String(AttrRequestID, op.RequestID))
	}
	if op.Metrics != nil {
		op.Metrics.RecordStart(ctx)
	}
	return WithOperation(ctx, op), span
}

// End closes the span and records the outcome. errorCode is empty on success.
func (op *Operation) End(ctx context.Context, span trace.Span, outcome, errorCode string, err error) {
	duration := time.Since(op.StartTime)

	if err != nil {
		SetSpanError(ctx, err)
	}
	span.SetAttributes(
		attribute.String(AttrOutcome, outcome),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	if errorCode != "" {
		span.SetAttributes(attribute.String(AttrErrorCode, errorCode))
	}
	span.End()

	if op.Metrics != nil {
		op.Metrics.RecordNormalize(ctx, op.Provider, outcome, errorCode, duration)
		if errorCode != "" {
			op.Metrics.RecordError(ctx, errorCode, "normalize")
		}
	}
}

// Duration returns the elapsed time since operation start.
func (op *Operation) Duration() time.Duration {
	return time.Since(op.StartTime)
}
