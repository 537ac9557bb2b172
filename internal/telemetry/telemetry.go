// Package telemetry configures OpenTelemetry tracing and metrics. With an
// OTLP endpoint configured everything ships over OTLP/HTTP; without one the
// exporters fall back to stdout so local runs still show spans and counters.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

var classificationCounter metric.Int64Counter

// Init sets up the global tracer and meter providers and returns a shutdown
// function that flushes both.
func Init(ctx context.Context, serviceName, otlpEndpoint string) (func(context.Context) error, error) {
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to build telemetry resource: %w", err)
	}

	traceExporter, metricReader, err := buildExporters(ctx, otlpEndpoint)
	if err != nil {
		return nil, err
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(metricReader),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(serviceName)
	classificationCounter, err = meter.Int64Counter("expense.classifications",
		metric.WithDescription("Expense classifications by outcome bucket"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create classification counter: %w", err)
	}

	shutdown := func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		traceErr := tracerProvider.Shutdown(ctx)
		metricErr := meterProvider.Shutdown(ctx)
		if traceErr != nil {
			return traceErr
		}
		return metricErr
	}
	return shutdown, nil
}

func buildExporters(ctx context.Context, otlpEndpoint string) (sdktrace.SpanExporter, sdkmetric.Reader, error) {
	if otlpEndpoint != "" {
		traceExporter, err := otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(otlpEndpoint),
			otlptracehttp.WithInsecure(),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
		}
		metricExporter, err := otlpmetrichttp.New(ctx,
			otlpmetrichttp.WithEndpoint(otlpEndpoint),
			otlpmetrichttp.WithInsecure(),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
		}
		return traceExporter, sdkmetric.NewPeriodicReader(metricExporter), nil
	}

	traceExporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create stdout trace exporter: %w", err)
	}
	metricExporter, err := stdoutmetric.New()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create stdout metric exporter: %w", err)
	}
	return traceExporter, sdkmetric.NewPeriodicReader(metricExporter,
		sdkmetric.WithInterval(time.Minute),
	), nil
}

// CountClassification records one classification outcome. Safe to call
// before Init; events are simply dropped.
func CountClassification(ctx context.Context, bucket string) {
	if classificationCounter == nil {
		return
	}
	classificationCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("bucket", bucket),
	))
}
