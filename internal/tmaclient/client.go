// Package tmaclient — клиентская сторона Mini App на Go: HTTP-клиент API сервиса,
// загрузчик каталога поверх relay, хранилища id корзины и синхронизатор состояния корзины.
package tmaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/tma_shop/internal/domain"
	"github.com/Gunvolt24/tma_shop/pkg/telemetry"
)

// InitDataHeader — заголовок с initData Telegram WebApp для /api/session.
const InitDataHeader = "X-Telegram-Init-Data"

// APIError — ответ сервиса с кодом не 2xx.
// Unwrap сводит статус к доменным ошибкам, чтобы вызывающий работал через errors.Is.
type APIError struct {
	Status     int
	Message    string
	UserErrors []domain.UserError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tma api: %d %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusInternalServerError:
		// Отсутствие учётных данных Shopify сервис отдаёт как 500 с фиксированным текстом.
		if e.Message == domain.ErrConfig.Error() {
			return domain.ErrConfig
		}
		return domain.ErrUpstream
	case http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case http.StatusBadRequest:
		if e.Message == "Unknown action" {
			return domain.ErrUnknownAction
		}
		return domain.ErrBadRequest
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return domain.ErrUpstream
	}
}

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// Client — HTTP-клиент API сервиса (relay, корзина, серверная сессия).
type Client struct {
	baseURL  string
	http     *http.Client
	initData string
}

// Option — настройка клиента.
type Option func(*Client)

// WithHTTPClient — свой *http.Client (тесты, прокси).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithInitData — сырой initData для запросов к /api/session.
func WithInitData(raw string) Option {
	return func(c *Client) { c.initData = raw }
}

// NewClient — baseURL вида "https://shop.example.com" (без /api).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http: &http.Client{
			Timeout:   30 * time.Second,
			Transport: telemetry.HTTPTransport(nil),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Storefront — POST /api/storefront; возвращает ответ Storefront API без изменений.
func (c *Client) Storefront(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	if variables == nil {
		variables = map[string]any{}
	}
	body := map[string]any{"query": query, "variables": variables}

	var out json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/api/storefront", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Cart — POST /api/cart. Для get несуществующей корзины возвращает (nil, nil).
func (c *Client) Cart(ctx context.Context, cmd domain.CartCommand) (*domain.Cart, error) {
	var cart *domain.Cart
	if err := c.do(ctx, http.MethodPost, "/api/cart", cmd, &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

type sessionBody struct {
	CartID string `json:"cartId"`
}

// SessionCartID — GET /api/session/cart; ok=false, если привязки нет.
func (c *Client) SessionCartID(ctx context.Context) (string, bool, error) {
	var out sessionBody
	err := c.do(ctx, http.MethodGet, "/api/session/cart", nil, &out)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return out.CartID, out.CartID != "", nil
}

// PutSessionCartID — PUT /api/session/cart.
func (c *Client) PutSessionCartID(ctx context.Context, cartID string) error {
	return c.do(ctx, http.MethodPut, "/api/session/cart", sessionBody{CartID: cartID}, nil)
}

// DeleteSessionCartID — DELETE /api/session/cart.
func (c *Client) DeleteSessionCartID(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/session/cart", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.initData != "" && strings.HasPrefix(path, "/api/session") {
		req.Header.Set(InitDataHeader, c.initData)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if rm, ok := out.(*json.RawMessage); ok {
		*rm = append((*rm)[:0], raw...)
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(status int, raw []byte) error {
	var body struct {
		Error      string             `json:"error"`
		UserErrors []domain.UserError `json:"userErrors"`
	}
	_ = json.Unmarshal(raw, &body)
	if body.Error == "" {
		body.Error = http.StatusText(status)
	}
	return &APIError{Status: status, Message: body.Error, UserErrors: body.UserErrors}
}
