// Package telemetry installs an OTLP trace exporter when one is configured.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const (
	// EndpointEnv enables export when set.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides DefaultServiceName.
	ServiceNameEnv = "OTEL_SERVICE_NAME"
	// DefaultServiceName identifies spans from this program.
	DefaultServiceName = "shortcuts"
)

// ShutdownFunc flushes pending spans and stops the exporter.
type ShutdownFunc func(context.Context) error

// Setup installs a global tracer provider exporting over OTLP/HTTP if
// OTEL_EXPORTER_OTLP_ENDPOINT is set. Otherwise the global no-op provider is
// left in place and the returned shutdown does nothing.
func Setup(ctx context.Context) (ShutdownFunc, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil // Disabled
	}

	var endpointOpt otlptracehttp.Option
	if strings.Contains(endpoint, "://") {
		endpointOpt = otlptracehttp.WithEndpointURL(endpoint)
	} else {
		endpointOpt = otlptracehttp.WithEndpoint(endpoint)
	}
	exporter, err := otlptracehttp.New(ctx, endpointOpt, otlptracehttp.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	return provider.Shutdown, nil
}
