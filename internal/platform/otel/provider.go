// Package otel はトレースプロバイダの初期化を行います。
package otel

import (
	"context"
	"fmt"

	"github.com/ogurasousui/timeclock-kiosk/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ShutdownFunc は送信待ちのスパンを flush してプロバイダを停止します。
type ShutdownFunc func(context.Context) error

// Setup は OTLP/HTTP でトレースを送信するプロバイダをグローバルに登録します。
// トレースが無効な設定の場合は何もせず、no-op の ShutdownFunc を返します。
func Setup(ctx context.Context, cfg config.TelemetryConfig, stationID string) (ShutdownFunc, error) {
	noop := func(context.Context) error { return nil }

	if !cfg.TracingEnabled() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.OTLPEndpoint))
	if err != nil {
		return noop, fmt.Errorf("otel: create exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceInstanceID(stationID),
		),
	)
	if err != nil {
		return noop, fmt.Errorf("otel: build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	return tp.Shutdown, nil
}
