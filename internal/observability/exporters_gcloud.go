//go:build gcloud

package observability

import (
	"context"

	mexporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/metric"
	texporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/trace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// newTraceExporter sends spans to Cloud Trace.
func newTraceExporter(_ context.Context, cfg Config) (sdktrace.SpanExporter, error) {
	return texporter.New(texporter.WithProjectID(cfg.GCPProjectID))
}

// newMetricReader sends metrics to Cloud Monitoring.
func newMetricReader(_ context.Context, cfg Config) (sdkmetric.Reader, error) {
	exporter, err := mexporter.New(mexporter.WithProjectID(cfg.GCPProjectID))
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exporter), nil
}
