package observability

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"github.com/kbukum/voicerouter/version"
)

// Exporter identifies the service and the OTLP HTTP collector both
// signals are sent to.
type Exporter struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	// Endpoint is host:port, e.g. "localhost:4318".
	Endpoint string
	Insecure bool
}

func defaultExporter(serviceName string) Exporter {
	return Exporter{
		ServiceName:    serviceName,
		ServiceVersion: version.Version,
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
	}
}

// serviceResource describes the service. Attributes are schemaless so the merge
// with resource.Default() never conflicts on schema URL.
func (e Exporter) serviceResource() (*resource.Resource, error) {
	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		semconv.ServiceName(e.ServiceName),
		semconv.ServiceVersion(e.ServiceVersion),
		attribute.String("environment", e.Environment),
	))
	if err != nil {
		return nil, fmt.Errorf("building resource for %s: %w", e.ServiceName, err)
	}
	return res, nil
}

// Telemetry owns the installed trace and metric providers.
type Telemetry struct {
	Tracer *sdktrace.TracerProvider
	Meter  *sdkmetric.MeterProvider
}

// Start installs both providers as the otel globals. If the meter fails
// the tracer is shut down again.
func Start(ctx context.Context, tc *TracerConfig, mc *MeterConfig) (*Telemetry, error) {
	tp, err := InitTracer(ctx, tc)
	if err != nil {
		return nil, err
	}
	mp, err := InitMeter(ctx, mc)
	if err != nil {
		return nil, errors.Join(err, tp.Shutdown(ctx))
	}
	return &Telemetry{Tracer: tp, Meter: mp}, nil
}

// Shutdown flushes and stops both providers.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return errors.Join(t.Tracer.Shutdown(ctx), t.Meter.Shutdown(ctx))
}
