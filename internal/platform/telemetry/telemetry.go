// Package telemetry wires OpenTelemetry tracing and metrics for the service.
//
// Setup builds both providers from the telemetry config section, registers
// them globally and returns the instruments the HTTP and database layers
// record into:
//
//	p, err := telemetry.Setup(ctx, cfg.Telemetry)
//	defer p.Shutdown(ctx)
//	db, err := database.Open(ctx, cfg.Database, p.Metrics, logger)
//
// With telemetry disabled Setup returns empty Providers whose Metrics is nil;
// every consumer treats nil Metrics as "record nothing".
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"

	"github.com/jsamuelsen11/home-service/internal/platform/config"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

const (
	exportTimeout  = 10 * time.Second
	batchTimeout   = 5 * time.Second
	metricInterval = 30 * time.Second
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrDBSystem    = attribute.Key("db.system")
	AttrDBOperation = attribute.Key("db.operation")
	AttrDBTable     = attribute.Key("db.collection.name")
	AttrResult      = attribute.Key("result")
)

// Providers owns the SDK providers created by Setup.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Shutdown flushes and stops whichever providers were created.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Setup creates the tracer and meter providers described by cfg and
// installs them, together with the W3C propagators, as the otel globals.
func Setup(ctx context.Context, cfg config.TelemetryConfig) (*Providers, error) {
	if !cfg.Enabled {
		return &Providers{}, nil
	}

	target, err := parseTarget(cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx, cfg.ServiceName, cfg.Environment)
	if err != nil {
		return nil, err
	}

	spans, err := target.spanExporter(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}
	readings, err := target.metricExporter(ctx)
	if err != nil {
		_ = spans.Shutdown(ctx)
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	p := &Providers{
		Tracer: sdktrace.NewTracerProvider(
			sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
			sdktrace.WithBatcher(spans, sdktrace.WithBatchTimeout(batchTimeout)),
			sdktrace.WithResource(res),
		),
		Meter: sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings, sdkmetric.WithInterval(metricInterval))),
			sdkmetric.WithResource(res),
		),
	}

	p.Metrics, err = NewMetrics(p.Meter, cfg.ServiceName)
	if err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}

	otel.SetTracerProvider(p.Tracer)
	otel.SetMeterProvider(p.Meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return p, nil
}

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	DBOperationDuration   metric.Float64Histogram
	DBOperationTotal      metric.Int64Counter
}

// NewMetrics registers the service instruments on a meter scoped by name.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	meter := mp.Meter(scope)
	var (
		m    Metrics
		errs []error
	)

	histogram := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return h
	}
	counter := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return c
	}

	m.ServerRequestDuration = histogram("http.server.request.duration", "Duration of incoming HTTP requests")
	m.ServerRequestTotal = counter("http.server.request.total", "Incoming HTTP requests", "{request}")
	m.DBOperationDuration = histogram("db.client.operation.duration", "Duration of database operations")
	m.DBOperationTotal = counter("db.client.operation.total", "Database operations", "{operation}")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &m, nil
}

// newResource merges the SDK defaults with the service identity and any
// OTEL_RESOURCE_ATTRIBUTES from the environment.
func newResource(ctx context.Context, serviceName, environment string) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(serviceName)}
	if environment != "" {
		attrs = append(attrs, semconv.DeploymentEnvironmentName(environment))
	}

	own, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithAttributes(attrs...),
		resource.WithSchemaURL(semconv.SchemaURL),
	)
	if err != nil && !errors.Is(err, resource.ErrPartialResource) {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	res, err := resource.Merge(resource.Default(), own)
	switch {
	case errors.Is(err, resource.ErrSchemaURLConflict):
		return own, nil
	case err != nil:
		return nil, fmt.Errorf("merging resource: %w", err)
	}
	return res, nil
}

// exportTarget is a validated exporter choice. For OTLP the endpoint URL is
// split once into the collector address and the transport security.
type exportTarget struct {
	kind     string
	hostPort string
	insecure bool
}

func parseTarget(exporter, endpoint string) (exportTarget, error) {
	switch exporter {
	case ExporterStdout:
		return exportTarget{kind: ExporterStdout}, nil
	case ExporterOTLP:
	default:
		return exportTarget{}, fmt.Errorf("unsupported exporter %q", exporter)
	}

	if endpoint == "" {
		return exportTarget{}, errors.New("otlp exporter requires an endpoint")
	}

	t := exportTarget{kind: ExporterOTLP, hostPort: endpoint, insecure: true}
	// A bare "host:port" parses with an empty Host; keep it as given.
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		t.hostPort = u.Host
		t.insecure = u.Scheme != "https"
	}
	return t, nil
}

func (t exportTarget) spanExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	if t.kind == ExporterStdout {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(t.hostPort),
		otlptracehttp.WithTimeout(exportTimeout),
	}
	if t.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func (t exportTarget) metricExporter(ctx context.Context) (sdkmetric.Exporter, error) {
	if t.kind == ExporterStdout {
		return stdoutmetric.New()
	}
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(t.hostPort),
		otlpmetrichttp.WithTimeout(exportTimeout),
	}
	if t.insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}
