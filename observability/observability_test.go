package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("voicerouter")

	if cfg.ServiceName != "voicerouter" {
		t.Errorf("expected ServiceName 'voicerouter', got %s", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("expected Endpoint 'localhost:4318', got %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected SampleRate 1.0, got %f", cfg.SampleRate)
	}
	if !cfg.Insecure {
		t.Error("expected Insecure to be true")
	}
	if cfg.ServiceVersion == "" {
		t.Error("expected ServiceVersion to default to the build version")
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("voicerouter")

	if cfg.ServiceName != "voicerouter" {
		t.Errorf("expected ServiceName 'voicerouter', got %s", cfg.ServiceName)
	}
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected Interval 15s, got %v", cfg.Interval)
	}
}

func TestSamplerFor(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{2.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%v", tc.rate), func(t *testing.T) {
			if got := samplerFor(tc.rate).Description(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
	if got := samplerFor(0.5).Description(); got == "AlwaysOnSampler" || got == "AlwaysOffSampler" {
		t.Errorf("expected ratio sampler, got %q", got)
	}
}

func TestNewResource(t *testing.T) {
	res, err := Exporter{ServiceName: "voicerouter", ServiceVersion: "1.2.3", Environment: "test"}.serviceResource()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, kv := range res.Attributes() {
		if kv.Key == "service.name" && kv.Value.AsString() == "voicerouter" {
			found = true
		}
	}
	if !found {
		t.Error("expected service.name attribute on resource")
	}
}

func TestNewMetricsNoop(t *testing.T) {
	metrics, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error creating metrics: %v", err)
	}

	ctx := context.Background()
	metrics.RecordStart(ctx)
	metrics.RecordNormalize(ctx, "gladia", OutcomeSuccess, "", 10*time.Millisecond)
	metrics.RecordWebhook(ctx, "deepgram", "transcription.completed", OutcomeSuccess)
	metrics.RecordError(ctx, "PARSE_ERROR", "webhook")
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func TestMetricsRecorded(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	metrics, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	metrics.RecordStart(ctx)
	metrics.RecordNormalize(ctx, "gladia", OutcomeFailure, "NO_RESULTS", time.Millisecond)
	metrics.RecordWebhook(ctx, "gladia", "transcription.completed", OutcomeSuccess)

	got := collect(t, reader)

	total, ok := got[MetricNormalizeTotal].Data.(metricdata.Sum[int64])
	if !ok || len(total.DataPoints) != 1 {
		t.Fatalf("expected one %s data point, got %+v", MetricNormalizeTotal, got[MetricNormalizeTotal].Data)
	}
	dp := total.DataPoints[0]
	if dp.Value != 1 {
		t.Errorf("expected count 1, got %d", dp.Value)
	}
	if v, ok := dp.Attributes.Value(attribute.Key(AttrErrorCode)); !ok || v.AsString() != "NO_RESULTS" {
		t.Errorf("expected error_code NO_RESULTS, got %v", v)
	}

	active, ok := got[MetricNormalizeActive].Data.(metricdata.Sum[int64])
	if !ok || len(active.DataPoints) != 1 || active.DataPoints[0].Value != 0 {
		t.Errorf("expected active gauge back at 0, got %+v", got[MetricNormalizeActive].Data)
	}

	if _, ok := got[MetricNormalizeDuration].Data.(metricdata.Histogram[float64]); !ok {
		t.Errorf("expected duration histogram, got %+v", got[MetricNormalizeDuration].Data)
	}
	if _, ok := got[MetricWebhookTotal]; !ok {
		t.Error("expected webhook counter to be recorded")
	}
}

func TestNewOperation(t *testing.T) {
	op := NewOperation(SpanNormalize, "gladia", "req-1", nil)

	if op.Provider != "gladia" {
		t.Errorf("expected Provider 'gladia', got %s", op.Provider)
	}
	if op.SpanName != SpanNormalize {
		t.Errorf("expected SpanName %q, got %s", SpanNormalize, op.SpanName)
	}
	if op.RequestID != "req-1" {
		t.Errorf("expected RequestID 'req-1', got %s", op.RequestID)
	}
	if op.StartTime.IsZero() {
		t.Error("expected StartTime to be set")
	}
}

func TestOperationFromContext(t *testing.T) {
	if OperationFromContext(context.Background()) != nil {
		t.Error("expected nil when operation not set")
	}

	op := NewOperation(SpanNormalize, "gladia", "req-1", nil)
	ctx := WithOperation(context.Background(), op)
	if got := OperationFromContext(ctx); got != op {
		t.Errorf("expected stored operation, got %+v", got)
	}
}

func TestOperationDuration(t *testing.T) {
	op := NewOperation(SpanNormalize, "gladia", "", nil)
	op.StartTime = time.Now().Add(-50 * time.Millisecond)

	d := op.Duration()
	if d < 45*time.Millisecond || d > 500*time.Millisecond {
		t.Errorf("expected duration around 50ms, got %v", d)
	}
}

func TestOperationSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer tp.Shutdown(context.Background())
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	metrics, _ := NewMetrics(noop.NewMeterProvider().Meter("test"))

	op := NewOperation(SpanNormalize, "deepgram", "req-9", metrics)
	ctx, span := op.Start(context.Background())
	if OperationFromContext(ctx) != op {
		t.Error("expected operation in span context")
	}
	op.End(ctx, span, OutcomeFailure, "PARSE_ERROR", fmt.Errorf("bad payload"))

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	s := spans[0]
	if s.Name != SpanNormalize {
		t.Errorf("expected span %q, got %q", SpanNormalize, s.Name)
	}
	if s.Status.Description != "bad payload" {
		t.Errorf("expected error status 'bad payload', got %q", s.Status.Description)
	}
	attrs := map[attribute.Key]string{}
	for _, kv := range s.Attributes {
		attrs[kv.Key] = kv.Value.Emit()
	}
	if attrs[AttrProvider] != "deepgram" {
		t.Errorf("expected provider attribute 'deepgram', got %q", attrs[AttrProvider])
	}
	if attrs[AttrRequestID] != "req-9" {
		t.Errorf("expected request id attribute 'req-9', got %q", attrs[AttrRequestID])
	}
	if attrs[AttrErrorCode] != "PARSE_ERROR" {
		t.Errorf("expected error code attribute, got %q", attrs[AttrErrorCode])
	}
}

func TestOperationNilMetrics(t *testing.T) {
	op := NewOperation(SpanWebhook, "gladia", "", nil)
	ctx, span := op.Start(context.Background())
	op.End(ctx, span, OutcomeSuccess, "", nil)
}

func TestSetSpanErrorNoSpan(t *testing.T) {
	SetSpanError(context.Background(), fmt.Errorf("no span error"))
}

func TestServiceHealth_AddComponent(t *testing.T) {
	sh := NewServiceHealth("voicerouter", "1.0.0")
	if sh.Status != HealthStatusUp {
		t.Errorf("expected Status 'up', got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "gladia", Status: HealthStatusUp})
	if sh.Status != HealthStatusUp {
		t.Errorf("expected status 'up' after healthy component, got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "telemetry", Status: HealthStatusDegraded, Message: "exporter unreachable"})
	if sh.Status != HealthStatusDegraded {
		t.Errorf("expected status 'degraded', got %s", sh.Status)
	}

	sh.AddComponent(Health{Name: "vexa", Status: HealthStatusDown})
	sh.AddComponent(Health{Name: "deepgram", Status: HealthStatusDegraded})
	if sh.Status != HealthStatusDown {
		t.Errorf("expected 'down' not overridden by 'degraded', got %s", sh.Status)
	}
	if len(sh.Components) != 4 {
		t.Errorf("expected 4 components, got %d", len(sh.Components))
	}
}

func TestServiceHealth_HTTPStatus(t *testing.T) {
	sh := NewServiceHealth("voicerouter", "dev")
	sh.AddComponent(Health{Name: "telemetry", Status: HealthStatusDegraded})
	if got := sh.HTTPStatus(); got != 200 {
		t.Errorf("expected 200 when degraded, got %d", got)
	}
	sh.AddComponent(Health{Name: "telemetry", Status: HealthStatusDown})
	if got := sh.HTTPStatus(); got != 503 {
		t.Errorf("expected 503 when down, got %d", got)
	}
}

func TestProvidersHealth(t *testing.T) {
	h := ProvidersHealth("normalizer", []string{"gladia", "deepgram"})
	if h.Status != HealthStatusUp || h.Details["providers"] != "gladia,deepgram" {
		t.Errorf("unexpected health %+v", h)
	}

	h = ProvidersHealth("webhook", nil)
	if h.Status != HealthStatusDegraded || h.Message == "" {
		t.Errorf("expected degraded with message, got %+v", h)
	}
}

func TestTelemetryShutdownNil(t *testing.T) {
	var tel *Telemetry
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Errorf("expected nil error for nil telemetry, got %v", err)
	}
}
