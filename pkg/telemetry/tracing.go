package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// TracingConfig — параметры экспорта трейсов.
type TracingConfig struct {
	ServiceName string
	Endpoint    string  // host:port OTLP/HTTP; пусто — localhost:4318
	SampleRatio float64 // доля корневых трейсов, [0..1]
	ShopDomain  string  // атрибут ресурса shopify.shop_domain, если задан
}

// SetupTracing настраивает OTLP/HTTP экспорт, семплинг и глобальные пропагаторы.
// Возвращает функцию корректного завершения провайдера.
func SetupTracing(ctx context.Context, cfg TracingConfig) (func(context.Context) error, error) {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "localhost:4318"
	}

	// Экспортёр OTLP/HTTP без TLS.
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	attrs := []attribute.KeyValue{
		semconv.ServiceName(cfg.ServiceName),
		attribute.String("telemetry.sdk", "opentelemetry"),
	}
	if cfg.ShopDomain != "" {
		attrs = append(attrs, attribute.String("shopify.shop_domain", cfg.ShopDomain))
	}

	// Решение родителя (пришедшее из Mini App через traceparent) уважаем,
	// ratio применяется только к корневым спанам.
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(Sampler(cfg.SampleRatio)),
		sdktrace.WithResource(resource.NewWithAttributes(semconv.SchemaURL, attrs...)),
	)

	// Глобальный провайдер и пропагатор (TraceContext + Baggage).
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{}, propagation.Baggage{},
		),
	)

	return traceProvider.Shutdown, nil
}

// Sampler — ParentBased(TraceIDRatioBased) с ratio, зажатым в [0..1].
func Sampler(ratio float64) sdktrace.Sampler {
	ratio = max(0, min(ratio, 1))
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}
