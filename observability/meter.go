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

	"github.com/kbukum/qtkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the host application.
	ServiceName string
	// ServiceVersion is the version of the host application.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
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

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
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
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the metric instruments recorded during binding resolution.
type Metrics struct {
	resolutionTotal    metric.Int64Counter
	activationTotal    metric.Int64Counter
	activationDuration metric.Float64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	resolutionTotal, err := meter.Int64Counter("qtkit.resolution.total",
		metric.WithDescription("Binding resolutions by outcome and resolution rule"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating qtkit.resolution.total counter: %w", err)
	}

	activationTotal, err := meter.Int64Counter("qtkit.activation.total",
		metric.WithDescription("Binding activation attempts by binding and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating qtkit.activation.total counter: %w", err)
	}

	activationDuration, err := meter.Float64Histogram("qtkit.activation.duration",
		metric.WithDescription("Duration of binding activation attempts in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating qtkit.activation.duration histogram: %w", err)
	}

	return &Metrics{
		resolutionTotal:    resolutionTotal,
		activationTotal:    activationTotal,
		activationDuration: activationDuration,
	}, nil
}

// RecordResolution records a finished resolution. rule names the decision
// rule that produced the outcome (loaded, override, ambiguous, candidates).
func (m *Metrics) RecordResolution(ctx context.Context, rule, status string) {
	m.resolutionTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("rule", rule),
		attribute.String("status", status),
	))
}

// RecordActivation records one binding activation attempt.
func (m *Metrics) RecordActivation(ctx context.Context, binding, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("binding", binding),
		attribute.String("status", status),
	)
	m.activationTotal.Add(ctx, 1, attrs)
	m.activationDuration.Record(ctx, duration.Seconds(), attrs)
}
