package telemetry

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HTTPTransport — оборачивает транспорт исходящих запросов в otelhttp:
// спан на каждый запрос и проброс traceparent апстриму.
// Без настроенного провайдера (трейсинг выключен) спаны no-op.
func HTTPTransport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return otelhttp.NewTransport(base)
}
