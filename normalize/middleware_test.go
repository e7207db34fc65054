package normalize

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/voicerouter/logger"
	"github.com/kbukum/voicerouter/observability"
	"github.com/kbukum/voicerouter/transcription"
)

func TestInstrumented_RecordsSpansMetricsAndLogs(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())
	metrics, err := observability.NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "test", &buf)

	n := Instrumented(NewAssembler(), metrics, log)
	ctx := context.Background()

	ok := n.Assemble(ctx, transcription.ProviderGladia, json.RawMessage(gladiaMinimal), true, 200)
	if !ok.Success {
		t.Fatalf("expected success, got %v", ok.Error)
	}
	bad := n.Assemble(ctx, transcription.ProviderGladia, json.RawMessage("{"), true, 200)
	if bad.Success {
		t.Fatal("expected failure")
	}

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	for _, s := range spans {
		if s.Name() != observability.SpanNormalize {
			t.Errorf("expected span %q, got %q", observability.SpanNormalize, s.Name())
		}
	}
	var code string
	for _, kv := range spans[1].Attributes() {
		if kv.Key == attribute.Key(observability.AttrErrorCode) {
			code = kv.Value.AsString()
		}
	}
	if code != "PARSE_ERROR" {
		t.Errorf("expected PARSE_ERROR on failing span, got %q", code)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != observability.MetricNormalizeTotal {
				continue
			}
			for _, dp := range m.Data.(metricdata.Sum[int64]).DataPoints {
				total += dp.Value
			}
		}
	}
	if total != 2 {
		t.Errorf("expected 2 normalizations counted, got %d", total)
	}

	out := buf.String()
	if !strings.Contains(out, `"message":"payload normalized"`) {
		t.Errorf("expected debug success log, got %s", out)
	}
	if !strings.Contains(out, `"error_code":"PARSE_ERROR"`) {
		t.Errorf("expected warn failure log with error code, got %s", out)
	}
}

func TestInstrumented_NilMetricsAndLogger(t *testing.T) {
	n := Instrumented(NewAssembler(), nil, nil)
	resp := n.AssembleFailure(context.Background(), transcription.ProviderDeepgram, "refused", nil)
	if resp.Success {
		t.Fatal("expected failure")
	}
	if resp.Error.Message != "refused" {
		t.Errorf("expected message 'refused', got %q", resp.Error.Message)
	}
}

func TestChain_Order(t *testing.T) {
	var calls []string
	mark := func(name string) Middleware {
		return func(inner Normalizer) Normalizer {
			return &observed{inner: inner, observe: func(ctx context.Context, p transcription.Provider, run func(context.Context) *transcription.UnifiedTranscriptResponse) *transcription.UnifiedTranscriptResponse {
				calls = append(calls, name)
				return run(ctx)
			}}
		}
	}

	n := Chain(mark("outer"), mark("inner"))(NewAssembler())
	n.Assemble(context.Background(), transcription.ProviderGladia, json.RawMessage(gladiaMinimal), true, 200)

	if strings.Join(calls, ",") != "outer,inner" {
		t.Errorf("expected outer,inner, got %v", calls)
	}
}
