package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/voicerouter/logger"
)

// MeterConfig configures metric export.
type MeterConfig struct {
	Exporter
	// Interval between periodic exports; zero keeps the SDK default.
	Interval time.Duration
}

// DefaultMeterConfig targets a local collector with a 15s interval.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{Exporter: defaultExporter(serviceName), Interval: 15 * time.Second}
}

// InitMeter installs a periodic OTLP HTTP meter provider. Callers shut the
// provider down on exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := config.serviceResource()
	if err != nil {
		return nil, err
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metric names.
const (
	MetricNormalizeTotal    = "voicerouter.normalize.total"
	MetricNormalizeDuration = "voicerouter.normalize.duration"
	MetricNormalizeActive   = "voicerouter.normalize.active"
	MetricWebhookTotal      = "voicerouter.webhook.total"
	MetricErrorTotal        = "voicerouter.error.total"
)

// Metrics holds the instruments recorded by the normalization pipeline.
type Metrics struct {
	normalizeTotal    metric.Int64Counter
	normalizeDuration metric.Float64Histogram
	normalizeActive   metric.Int64UpDownCounter
	webhookTotal      metric.Int64Counter
	errorTotal        metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	normalizeTotal, err := meter.Int64Counter(MetricNormalizeTotal,
		metric.WithDescription("Provider payloads normalized, by provider and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricNormalizeTotal, err)
	}

	normalizeDuration, err := meter.Float64Histogram(MetricNormalizeDuration,
		metric.WithDescription("Duration of payload normalization in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricNormalizeDuration, err)
	}

	normalizeActive, err := meter.Int64UpDownCounter(MetricNormalizeActive,
		metric.WithDescription("Normalizations currently in progress"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s gauge: %w", MetricNormalizeActive, err)
	}

	webhookTotal, err := meter.Int64Counter(MetricWebhookTotal,
		metric.WithDescription("Webhook events normalized, by provider and event type"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricWebhookTotal, err)
	}

	errorTotal, err := meter.Int64Counter(MetricErrorTotal,
		metric.WithDescription("Normalization failures by error code and component"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricErrorTotal, err)
	}

	return &Metrics{
		normalizeTotal:    normalizeTotal,
		normalizeDuration: normalizeDuration,
		normalizeActive:   normalizeActive,
		webhookTotal:      webhookTotal,
		errorTotal:        errorTotal,
	}, nil
}

// RecordStart increments the in-progress gauge.
func (m *Metrics) RecordStart(ctx context.Context) {
	m.normalizeActive.Add(ctx, 1)
}

// RecordNormalize decrements the in-progress gauge and records a finished
// normalization. errorCode is empty on success.
func (m *Metrics) RecordNormalize(ctx context.Context, provider, outcome, errorCode string, duration time.Duration) {
	m.normalizeActive.Add(ctx, -1)
	attrs := []attribute.KeyValue{
		attribute.String(AttrProvider, provider),
		attribute.String(AttrOutcome, outcome),
	}
	if errorCode != "" {
		attrs = append(attrs, attribute.String(AttrErrorCode, errorCode))
	}
	m.normalizeTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.normalizeDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrProvider, provider),
	))
}

// RecordWebhook records a normalized webhook event.
func (m *Metrics) RecordWebhook(ctx context.Context, provider, eventType, outcome string) {
	m.webhookTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrProvider, provider),
		attribute.String(AttrEventType, eventType),
		attribute.String(AttrOutcome, outcome),
	))
}

// RecordError records a failure by error code and component.
func (m *Metrics) RecordError(ctx context.Context, errorCode, component string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrErrorCode, errorCode),
		attribute.String("component", component),
	))
}
