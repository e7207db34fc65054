// Package observability provides OpenTelemetry tracing and metrics for the
// normalization pipeline and the webhook receiver.
//
// Tracing:
//
//	tc := observability.DefaultTracerConfig("voicerouter")
//	tp, err := observability.InitTracer(ctx, &tc)
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanNormalize)
//	defer span.End()
//
// Metrics:
//
//	mc := observability.DefaultMeterConfig("voicerouter")
//	mp, err := observability.InitMeter(ctx, &mc)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("voicerouter"))
//	metrics.RecordNormalize(ctx, "gladia", "success", "", duration)
//
// Both at once, as the serve command does:
//
//	tel, err := observability.Start(ctx, &tc, &mc)
//	defer tel.Shutdown(ctx)
//
// Health Checks:
//
//	health := observability.NewServiceHealth("voicerouter", "1.0.0")
//	health.AddComponent(observability.Health{Name: "gladia", Status: observability.HealthStatusUp})
package observability
