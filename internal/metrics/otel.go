package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultServiceName = "nfl-teams-console"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx              context.Context
	requests         metric.Int64Counter
	requestLatencyMs metric.Float64Histogram
	upstreamCalls    metric.Int64Counter
	upstreamErrors   metric.Int64Counter
	upstreamLatency  metric.Float64Histogram
	renders          metric.Int64Counter
	renderedRows     metric.Int64Histogram
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(defaultServiceName)

	requests, err := meter.Int64Counter("http_requests_total")
	if err != nil {
		return nil, err
	}
	requestLatency, err := meter.Float64Histogram("http_request_duration_ms")
	if err != nil {
		return nil, err
	}
	upstreamCalls, err := meter.Int64Counter("upstream_calls_total")
	if err != nil {
		return nil, err
	}
	upstreamErrors, err := meter.Int64Counter("upstream_errors_total")
	if err != nil {
		return nil, err
	}
	upstreamLatency, err := meter.Float64Histogram("upstream_duration_ms")
	if err != nil {
		return nil, err
	}
	renders, err := meter.Int64Counter("list_renders_total")
	if err != nil {
		return nil, err
	}
	renderedRows, err := meter.Int64Histogram("list_rendered_rows")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:              context.Background(),
		requests:         requests,
		requestLatencyMs: requestLatency,
		upstreamCalls:    upstreamCalls,
		upstreamErrors:   upstreamErrors,
		upstreamLatency:  upstreamLatency,
		renders:          renders,
		renderedRows:     renderedRows,
	}, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	)
	o.requests.Add(o.ctx, 1, attrs)
	o.requestLatencyMs.Record(o.ctx, float64(duration.Milliseconds()), attrs)
}

func (o *otelInstruments) recordUpstreamCall(provider, op string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(AttrProvider, provider),
		attribute.String(AttrOperation, op),
	)
	o.upstreamCalls.Add(o.ctx, 1, attrs)
	o.upstreamLatency.Record(o.ctx, float64(duration.Milliseconds()), attrs)
	if err != nil {
		o.upstreamErrors.Add(o.ctx, 1, attrs)
	}
}

func (o *otelInstruments) recordRender(rows int) {
	if o == nil {
		return
	}
	o.renders.Add(o.ctx, 1)
	o.renderedRows.Record(o.ctx, int64(rows))
}
