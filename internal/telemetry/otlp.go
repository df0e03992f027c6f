// Package telemetry configures OpenTelemetry tracing for fasguide.
package telemetry

import (
	"context"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// EndpointEnv enables export when set.
	EndpointEnv    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	ServiceNameEnv = "OTEL_SERVICE_NAME"

	DefaultServiceName  = "fasguide"
	InstrumentationName = "fasguide/ui"
)

// Provider wraps a TracerProvider together with its shutdown hook.
type Provider struct {
	oteltrace.TracerProvider
	shutdown func(context.Context) error
	enabled  bool
}

// NewTracerProvider returns an OTLP/HTTP backed provider if
// OTEL_EXPORTER_OTLP_ENDPOINT is set, and a noop provider otherwise.
// serviceName is used when OTEL_SERVICE_NAME is unset; empty falls back to
// DefaultServiceName.
//
// The endpoint is normally a URL (http://collector:4318) and is read by the
// exporter itself, which appends /v1/traces. A bare host:port is accepted
// and exported over plain HTTP.
func NewTracerProvider(ctx context.Context, serviceName string) (*Provider, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return Noop(), nil
	}

	var opts []otlptracehttp.Option
	if !strings.Contains(endpoint, "://") {
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	if env := os.Getenv(ServiceNameEnv); env != "" {
		serviceName = env
	}
	if serviceName == "" {
		serviceName = DefaultServiceName
	}

	return newSDKProvider(sdktrace.WithBatcher(exporter), serviceName), nil
}

// SetErrorLogger routes errors raised inside the otel SDK, such as failed
// exports, to logger. The default handler writes to stderr, which the TUI owns.
func SetErrorLogger(logger zerolog.Logger) {
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		logger.Warn().Err(err).Msg("otel error")
	}))
}

// NewWithSpanProcessor builds an enabled provider around sp. Used to attach
// in-memory recorders.
func NewWithSpanProcessor(sp sdktrace.SpanProcessor) *Provider {
	return newSDKProvider(sdktrace.WithSpanProcessor(sp), DefaultServiceName)
}

func newSDKProvider(opt sdktrace.TracerProviderOption, serviceName string) *Provider {
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))
	provider := sdktrace.NewTracerProvider(opt, sdktrace.WithResource(res))
	return &Provider{
		TracerProvider: provider,
		shutdown:       provider.Shutdown,
		enabled:        true,
	}
}

// Noop returns a provider that records nothing.
func Noop() *Provider {
	return &Provider{
		TracerProvider: noop.NewTracerProvider(),
		shutdown:       func(context.Context) error { return nil },
	}
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.enabled
}

// Tracer returns the tracer used by the UI.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(InstrumentationName)
	}
	return p.TracerProvider.Tracer(InstrumentationName)
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.shutdown(ctx)
}
