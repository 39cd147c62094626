package shopify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/tma_shop/internal/domain"
	"github.com/Gunvolt24/tma_shop/internal/ports"
	"github.com/Gunvolt24/tma_shop/pkg/metrics"
	"github.com/Gunvolt24/tma_shop/pkg/telemetry"
	"github.com/machinebox/graphql"
)

// Проверка, что Client удовлетворяет портам приложения.
var (
	_ ports.StorefrontRelay = (*Client)(nil)
	_ ports.CartGateway     = (*Client)(nil)
	_ ports.CatalogGateway  = (*Client)(nil)
)

const tokenHeader = "X-Shopify-Storefront-Access-Token"

// Config — параметры доступа к Storefront API.
type Config struct {
	ShopDomain      string
	StorefrontToken string
	APIVersion      string
	Endpoint        string // полный URL; если задан — ShopDomain/APIVersion не используются для адреса
	Timeout         time.Duration
}

// Client — клиент Storefront GraphQL API.
// Relay ходит через net/http (тело ответа нужно без изменений),
// типизированные операции — через machinebox/graphql.
type Client struct {
	endpoint string
	token    string
	ready    bool

	httpClient *http.Client
	gql        *graphql.Client
	log        ports.Logger
}

// NewClient — конструктор. Отсутствие домена или токена не ошибка конструктора:
// каждый вызов вернёт domain.ErrConfig без сетевого запроса.
func NewClient(cfg Config, log ports.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	version := cfg.APIVersion
	if version == "" {
		version = "2024-07"
	}

	// Нормализуем домен: без схемы и завершающего слэша.
	shop := strings.TrimSpace(cfg.ShopDomain)
	shop = strings.TrimPrefix(shop, "https://")
	shop = strings.TrimPrefix(shop, "http://")
	shop = strings.TrimSuffix(shop, "/")

	endpoint := cfg.Endpoint
	if endpoint == "" && shop != "" {
		endpoint = fmt.Sprintf("https://%s/api/%s/graphql.json", shop, version)
	}

	hc := &http.Client{
		Timeout:   timeout,
		Transport: telemetry.HTTPTransport(nil),
	}

	c := &Client{
		endpoint:   endpoint,
		token:      cfg.StorefrontToken,
		ready:      shop != "" && cfg.StorefrontToken != "",
		httpClient: hc,
		log:        log,
	}
	if c.ready {
		c.gql = graphql.NewClient(endpoint, graphql.WithHTTPClient(hc))
	}
	return c
}

// Ready — заданы ли учётные данные.
func (c *Client) Ready() bool { return c.ready }

// run — выполнить типизированную операцию и разложить ошибку по таксономии.
func (c *Client) run(ctx context.Context, operation string, req *graphql.Request, resp any) error {
	if !c.ready {
		metrics.StorefrontRequests.WithLabelValues(operation, metrics.OutcomeRejected).Inc()
		return domain.ErrConfig
	}
	req.Header.Set(tokenHeader, c.token)

	start := time.Now()
	err := c.gql.Run(ctx, req, resp)
	c.observe(operation, start, err)
	if err != nil {
		c.log.Warnf(ctx, "shopify %s failed: %v", operation, err)
		return toUpstreamError(err)
	}
	return nil
}

func (c *Client) observe(operation string, start time.Time, err error) {
	metrics.StorefrontDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeError
	}
	metrics.StorefrontRequests.WithLabelValues(operation, outcome).Inc()
}

// toUpstreamError — ошибки machinebox/graphql имеют вид "graphql: <первое сообщение>".
func toUpstreamError(err error) error {
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		return err
	}
	msg := strings.TrimPrefix(err.Error(), "graphql: ")
	return domain.NewUpstreamError(0, msg, err)
}
