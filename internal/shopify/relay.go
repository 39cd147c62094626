package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Gunvolt24/tma_shop/internal/domain"
	"github.com/Gunvolt24/tma_shop/pkg/metrics"
)

const maxResponseBytes = 16 << 20

type relayRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type relayErrors struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Relay — отправляет {query, variables} в Storefront API с серверным токеном.
// Ответ возвращается без изменений; транспортная ошибка, не-2xx или поле errors (даже []) —
// *domain.UpstreamError с первым сообщением. Повторов нет.
func (c *Client) Relay(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	if !c.ready {
		metrics.StorefrontRequests.WithLabelValues("relay", metrics.OutcomeRejected).Inc()
		return nil, domain.ErrConfig
	}
	if variables == nil {
		variables = map[string]any{}
	}

	payload, err := json.Marshal(relayRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("marshal relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tokenHeader, c.token)

	start := time.Now()
	body, status, err := c.do(req)
	if err == nil {
		err = checkRelayResponse(status, body)
	}
	c.observe("relay", start, err)

	if err != nil {
		c.log.Warnf(ctx, "shopify relay failed status=%d err=%v", status, err)
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, domain.NewUpstreamError(0, err.Error(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, domain.NewUpstreamError(resp.StatusCode, "read response: "+err.Error(), err)
	}
	return body, resp.StatusCode, nil
}

// checkRelayResponse — разбирает только поле errors; остальное тело не трогаем.
// errors: null и отсутствие поля — успех, любой массив — ошибка.
func checkRelayResponse(status int, body []byte) error {
	var parsed relayErrors
	decodeErr := json.Unmarshal(body, &parsed)

	ok := status >= 200 && status < 300
	if ok && decodeErr == nil && parsed.Errors == nil {
		return nil
	}

	msg := ""
	if decodeErr == nil && len(parsed.Errors) > 0 {
		msg = parsed.Errors[0].Message
	}
	if msg == "" && ok && decodeErr != nil {
		msg = "invalid JSON from Shopify Storefront"
	}
	return domain.NewUpstreamError(status, msg, nil)
}
