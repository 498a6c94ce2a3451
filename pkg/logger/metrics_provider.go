/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package logger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.31.0"
	"google.golang.org/grpc/credentials"
)

// ErrOTelMetricsDisabled is returned when no OTLP endpoint is configured for metrics.
var ErrOTelMetricsDisabled = errors.New("OTel metrics exporter disabled")

//nolint:gochecknoglobals // one provider per process, shut down by ShutdownOTEL
var (
	meterMu       sync.Mutex
	meterProvider *sdkmetric.MeterProvider
)

const (
	defaultServiceName    = "wifihealth"
	defaultServiceVersion = "1.0.0"

	defaultMetricExportInterval = 15 * time.Second
	// metricExportIntervalEnv is the standard OTel variable, in milliseconds.
	metricExportIntervalEnv = "OTEL_METRIC_EXPORT_INTERVAL"
)

// MetricsConfig selects the OTLP collector for the detection counters. It shares the
// endpoint, headers and TLS settings of the log exporter.
type MetricsConfig struct {
	ServiceName    string
	ServiceVersion string
	OTel           *OTelConfig
	// ExportInterval overrides OTEL_METRIC_EXPORT_INTERVAL; both unset means 15s.
	ExportInterval time.Duration
}

// InitializeMetrics installs the global MeterProvider. The first successful call wins and
// later calls return the same provider. ErrOTelMetricsDisabled means nothing is exported and
// instruments fall back to the no-op provider.
func InitializeMetrics(ctx context.Context, config MetricsConfig) (*sdkmetric.MeterProvider, error) {
	if config.OTel == nil || !config.OTel.Enabled || config.OTel.Endpoint == "" {
		return nil, ErrOTelMetricsDisabled
	}

	meterMu.Lock()
	defer meterMu.Unlock()

	if meterProvider != nil {
		return meterProvider, nil
	}

	opts, err := metricExporterOptions(config.OTel)
	if err != nil {
		return nil, err
	}

	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(orDefault(config.ServiceName, defaultServiceName)),
		semconv.ServiceVersion(orDefault(config.ServiceVersion, defaultServiceVersion)),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics resource: %w", err)
	}

	meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(metricExportInterval(config.ExportInterval)),
		)),
	)

	otel.SetMeterProvider(meterProvider)

	return meterProvider, nil
}

func metricExporterOptions(cfg *OTelConfig) ([]otlpmetricgrpc.Option, error) {
	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.Endpoint)}

	switch {
	case cfg.Insecure:
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	case cfg.TLS != nil:
		tlsConfig, err := setupTLSConfig(cfg.TLS)
		if err != nil {
			return nil, fmt.Errorf("failed to setup metrics TLS configuration: %w", err)
		}

		opts = append(opts, otlpmetricgrpc.WithTLSCredentials(credentials.NewTLS(tlsConfig)))
	}

	if len(cfg.Headers) > 0 {
		opts = append(opts, otlpmetricgrpc.WithHeaders(cfg.Headers))
	}

	return opts, nil
}

func metricExportInterval(configured time.Duration) time.Duration {
	if configured > 0 {
		return configured
	}

	if ms, err := strconv.Atoi(os.Getenv(metricExportIntervalEnv)); err == nil && ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}

	return defaultMetricExportInterval
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

func shutdownMeterProvider(ctx context.Context) error {
	meterMu.Lock()
	defer meterMu.Unlock()

	if meterProvider == nil {
		return nil
	}

	err := meterProvider.Shutdown(ctx)
	if err == nil {
		meterProvider = nil
	}

	return err
}
