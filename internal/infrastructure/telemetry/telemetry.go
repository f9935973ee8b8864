// Package telemetry wires OpenTelemetry tracing, metrics and logs export plus
// Pyroscope continuous profiling. Every provider degrades to a no-op when disabled.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/ivoirestore/backend/internal/infrastructure/config"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// shutdownTimeout bounds how long a provider may spend flushing on shutdown.
const shutdownTimeout = 10 * time.Second

// Config holds the settings shared by the tracer, meter and logger providers.
type Config struct {
	Enabled           bool
	CollectorEndpoint string
	SamplingRatio     float64
	ServiceName       string
	ServiceVersion    string
	Insecure          bool
}

// FromSettings converts the application configuration into provider configs.
func FromSettings(tc config.TelemetryConfig, version string) (Config, MetricsConfig, LogsConfig) {
	base := Config{
		Enabled:           tc.Enabled,
		CollectorEndpoint: tc.CollectorEndpoint,
		SamplingRatio:     tc.SamplingRatio,
		ServiceName:       tc.ServiceName,
		ServiceVersion:    version,
		Insecure:          tc.Insecure,
	}
	metrics := MetricsConfig{
		Config:         base,
		ExportInterval: tc.MetricsInterval,
	}
	metrics.Enabled = tc.Enabled && tc.MetricsEnabled

	logs := LogsConfig{Config: base}
	logs.Enabled = tc.Enabled && tc.LogsEnabled

	return base, metrics, logs
}

func newResource(cfg Config) (*resource.Resource, error) {
	version := cfg.ServiceVersion
	if version == "" {
		version = "1.0.0"
	}
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

func shutdownContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, shutdownTimeout)
}
