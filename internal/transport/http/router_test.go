package rest_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"

	cachemem "github.com/Gunvolt24/tma_shop/internal/cache/memory"
	"github.com/Gunvolt24/tma_shop/internal/domain"
	"github.com/Gunvolt24/tma_shop/internal/ports/mocks"
	rest "github.com/Gunvolt24/tma_shop/internal/transport/http"
	"github.com/Gunvolt24/tma_shop/internal/usecase"
	"github.com/Gunvolt24/tma_shop/pkg/telegram"
)

const botToken = "123456:test-token"

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

type fixture struct {
	relay   *mocks.MockStorefrontRelay
	carts   *mocks.MockCartDispatcher
	catalog *mocks.MockCatalogLoader
	router  *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	f := &fixture{
		relay:   mocks.NewMockStorefrontRelay(ctrl),
		carts:   mocks.NewMockCartDispatcher(ctrl),
		catalog: mocks.NewMockCatalogLoader(ctrl),
	}
	h := rest.NewHandler(rest.Deps{
		Relay:    f.relay,
		Carts:    f.carts,
		Catalog:  f.catalog,
		Sessions: usecase.NewSessionService(cachemem.NewSessionStore(10, time.Hour), nopLogger{}),
		Verifier: telegram.NewVerifier(botToken, time.Hour),
		Log:      nopLogger{},
		Timeout:  2 * time.Second,
	})
	f.router = rest.NewRouter(h, "", "")
	return f
}

func (f *fixture) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not json: %q", w.Body.String())
	}
	return body.Error
}

func TestPing_FrameOptionsAndRequestID(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodGet, "/ping", "")

	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("unexpected response: %d %q", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Frame-Options") != "ALLOWALL" {
		t.Fatalf("X-Frame-Options missing")
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("X-Request-ID missing")
	}
}

func TestStorefront_RelaysBodyVerbatim(t *testing.T) {
	f := newFixture(t)

	upstream := json.RawMessage(`{"data":{"shop":{"name":"Demo"}}}`)
	f.relay.EXPECT().Relay(gomock.Any(), "{ shop { name } }", map[string]any{"first": float64(3)}).Return(upstream, nil)

	w := f.do(http.MethodPost, "/api/storefront", `{"query":"{ shop { name } }","variables":{"first":3}}`)
	if w.Code != http.StatusOK || w.Body.String() != string(upstream) {
		t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
	}
}

func TestStorefront_Errors(t *testing.T) {
	f := newFixture(t)

	f.relay.EXPECT().Relay(gomock.Any(), "{ a }", gomock.Any()).Return(nil, domain.NewUpstreamError(200, "Field 'a' doesn't exist", nil))
	f.relay.EXPECT().Relay(gomock.Any(), "{ b }", gomock.Any()).Return(nil, domain.ErrConfig)

	tests := []struct {
		name       string
		method     string
		body       string
		wantStatus int
		wantError  string
	}{
		{"upstream", http.MethodPost, `{"query":"{ a }"}`, http.StatusInternalServerError, "Field 'a' doesn't exist"},
		{"config", http.MethodPost, `{"query":"{ b }"}`, http.StatusInternalServerError, domain.ErrConfig.Error()},
		{"invalid json", http.MethodPost, `{`, http.StatusBadRequest, "invalid json"},
		{"no query", http.MethodPost, `{"variables":{}}`, http.StatusBadRequest, "Missing query"},
		{"wrong method", http.MethodGet, ``, http.StatusMethodNotAllowed, "Method not allowed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(tt.method, "/api/storefront", tt.body)
			if w.Code != tt.wantStatus || errorOf(t, w) != tt.wantError {
				t.Fatalf("want %d %q, got %d %s", tt.wantStatus, tt.wantError, w.Code, w.Body.String())
			}
		})
	}
}

func TestCart_Add_ReturnsCartAndNoCache(t *testing.T) {
	f := newFixture(t)

	f.carts.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.CartCommand) (*domain.Cart, error) {
			if cmd.Action != domain.CartActionAdd || cmd.CartID != "gid://c" || cmd.MerchandiseID != "gid://v" {
				t.Fatalf("unexpected command: %+v", cmd)
			}
			return &domain.Cart{ID: "gid://c", CheckoutURL: "https://demo/checkout", TotalQuantity: 2}, nil
		})

	w := f.do(http.MethodPost, "/api/cart", `{"action":"add","cartId":"gid://c","merchandiseId":"gid://v","quantity":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var cart domain.Cart
	if err := json.Unmarshal(w.Body.Bytes(), &cart); err != nil || cart.TotalQuantity != 2 || cart.ID != "gid://c" {
		t.Fatalf("unexpected cart: %+v err=%v", cart, err)
	}
	if cc := w.Header().Get("Cache-Control"); !strings.Contains(cc, "no-store") || w.Header().Get("Pragma") != "no-cache" || w.Header().Get("Expires") != "0" {
		t.Fatalf("no-cache headers missing: %v", w.Header())
	}
}

func TestCart_Get_NullCart(t *testing.T) {
	f := newFixture(t)
	f.carts.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil, nil)

	w := f.do(http.MethodPost, "/api/cart", `{"action":"get","cartId":"gid://gone"}`)
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "null" {
		t.Fatalf("want 200 null, got %d %s", w.Code, w.Body.String())
	}
}

func TestCart_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"bad request", &domain.BadRequestError{Field: "cartId"}, http.StatusBadRequest, "Missing cartId"},
		{"unknown action", fmt.Errorf("%w: %q", domain.ErrUnknownAction, "x"), http.StatusBadRequest, "Unknown action"},
		{"user errors", &domain.ValidationError{UserErrors: []domain.UserError{{Message: "Out of stock"}}}, http.StatusUnprocessableEntity, "Out of stock"},
		{"upstream", domain.NewUpstreamError(502, "", nil), http.StatusInternalServerError, "Shopify Storefront error"},
		{"config", domain.ErrConfig, http.StatusInternalServerError, domain.ErrConfig.Error()},
		{"other", context.DeadlineExceeded, http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.carts.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := f.do(http.MethodPost, "/api/cart", `{"action":"get","cartId":"c"}`)
			if w.Code != tt.wantStatus || errorOf(t, w) != tt.wantError {
				t.Fatalf("want %d %q, got %d %s", tt.wantStatus, tt.wantError, w.Code, w.Body.String())
			}
		})
	}
}

func TestCart_UserErrorsInBody(t *testing.T) {
	f := newFixture(t)
	f.carts.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		Return(nil, &domain.ValidationError{UserErrors: []domain.UserError{{Field: []string{"lines"}, Message: "Out of stock"}}})

	w := f.do(http.MethodPost, "/api/cart", `{"action":"add","cartId":"c","merchandiseId":"m"}`)
	var body struct {
		UserErrors []domain.UserError `json:"userErrors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body.UserErrors) != 1 {
		t.Fatalf("userErrors missing: %s", w.Body.String())
	}
}

func TestCart_InvalidJSONAndMethod(t *testing.T) {
	f := newFixture(t)

	if w := f.do(http.MethodPost, "/api/cart", `not json`); w.Code != http.StatusBadRequest {
		t.Fatalf("invalid json: status=%d", w.Code)
	}
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := f.do(method, "/api/cart", "")
		if w.Code != http.StatusMethodNotAllowed || errorOf(t, w) != "Method not allowed" {
			t.Fatalf("%s: %d %s", method, w.Code, w.Body.String())
		}
		if cc := w.Header().Get("Cache-Control"); !strings.Contains(cc, "no-store") || w.Header().Get("Pragma") != "no-cache" || w.Header().Get("Expires") != "0" {
			t.Fatalf("%s: no-cache headers missing on 405: %v", method, w.Header())
		}
	}

	// Другим маршрутам no-cache на 405 не добавляется.
	if w := f.do(http.MethodGet, "/api/storefront", ""); w.Header().Get("Cache-Control") != "" {
		t.Fatalf("storefront 405 must not carry Cache-Control: %v", w.Header())
	}
}

func TestProducts_WindowAndTotal(t *testing.T) {
	f := newFixture(t)

	list := make([]domain.Product, 0, 5)
	for i := range 5 {
		list = append(list, domain.Product{ID: "gid://p" + strconv.Itoa(i)})
	}
	f.catalog.EXPECT().LoadAll(gomock.Any()).Return(list, nil).Times(2)

	w := f.do(http.MethodGet, "/api/products", "")
	var all []domain.Product
	if err := json.Unmarshal(w.Body.Bytes(), &all); err != nil || len(all) != 5 {
		t.Fatalf("want 5 products, got %d err=%v", len(all), err)
	}

	w = f.do(http.MethodGet, "/api/products?limit=2&offset=3", "")
	var page []domain.Product
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil || len(page) != 2 || page[0].ID != "gid://p3" {
		t.Fatalf("unexpected window: %+v err=%v", page, err)
	}
	if w.Header().Get("X-Total-Count") != "5" {
		t.Fatalf("X-Total-Count: %q", w.Header().Get("X-Total-Count"))
	}
}

func TestProducts_UpstreamError(t *testing.T) {
	f := newFixture(t)
	f.catalog.EXPECT().LoadAll(gomock.Any()).Return(nil, domain.NewUpstreamError(0, "Throttled", nil))

	w := f.do(http.MethodGet, "/api/products", "")
	if w.Code != http.StatusInternalServerError || errorOf(t, w) != "Throttled" {
		t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
	}
}

func signedInitData(userID int64, authDate time.Time) string {
	v := url.Values{}
	v.Set("auth_date", strconv.FormatInt(authDate.Unix(), 10))
	v.Set("query_id", "AAH")
	v.Set("user", fmt.Sprintf(`{"id":%d,"first_name":"Ann"}`, userID))
	v.Set("hash", telegram.Sign(botToken, v))
	return v.Encode()
}

func TestSession_RoundTrip(t *testing.T) {
	f := newFixture(t)
	initData := signedInitData(777, time.Now())

	if w := f.do(http.MethodGet, "/api/session/cart", "", "X-Telegram-Init-Data", initData); w.Code != http.StatusNotFound {
		t.Fatalf("empty session: status=%d", w.Code)
	}
	if w := f.do(http.MethodPut, "/api/session/cart", `{"cartId":"gid://c1"}`, "X-Telegram-Init-Data", initData); w.Code != http.StatusNoContent {
		t.Fatalf("put: status=%d body=%s", w.Code, w.Body.String())
	}

	w := f.do(http.MethodGet, "/api/session/cart", "", "X-Telegram-Init-Data", initData)
	var got struct {
		CartID string `json:"cartId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || got.CartID != "gid://c1" {
		t.Fatalf("get: %d %s", w.Code, w.Body.String())
	}

	// другой пользователь не видит чужую корзину
	other := signedInitData(778, time.Now())
	if w := f.do(http.MethodGet, "/api/session/cart", "", "X-Telegram-Init-Data", other); w.Code != http.StatusNotFound {
		t.Fatalf("other user: status=%d", w.Code)
	}

	if w := f.do(http.MethodDelete, "/api/session/cart", "", "X-Telegram-Init-Data", initData); w.Code != http.StatusNoContent {
		t.Fatalf("delete: status=%d", w.Code)
	}
	if w := f.do(http.MethodGet, "/api/session/cart", "", "X-Telegram-Init-Data", initData); w.Code != http.StatusNotFound {
		t.Fatalf("after delete: status=%d", w.Code)
	}
}

func TestSession_Unauthorized(t *testing.T) {
	f := newFixture(t)

	tampered := strings.Replace(signedInitData(777, time.Now()), "Ann", "Bob", 1)
	expired := signedInitData(777, time.Now().Add(-2*time.Hour))

	for name, raw := range map[string]string{"missing": "", "tampered": tampered, "expired": expired} {
		w := f.do(http.MethodGet, "/api/session/cart", "", "X-Telegram-Init-Data", raw)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: want 401, got %d", name, w.Code)
		}
	}
}

func TestSession_AuthNotConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := rest.NewHandler(rest.Deps{
		Sessions: usecase.NewSessionService(cachemem.NewSessionStore(10, time.Hour), nopLogger{}),
		Verifier: telegram.NewVerifier("", time.Hour),
		Log:      nopLogger{},
		Timeout:  time.Second,
	})
	router := rest.NewRouter(h, "", "")

	req := httptest.NewRequest(http.MethodGet, "/api/session/cart", http.NoBody)
	req.Header.Set("X-Telegram-Init-Data", signedInitData(777, time.Now()))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError || errorOf(t, w) != "telegram auth is not configured" {
		t.Fatalf("want 500 with error body, got %d %s", w.Code, w.Body.String())
	}
}

func TestSession_PutEmptyCartID(t *testing.T) {
	f := newFixture(t)
	w := f.do(http.MethodPut, "/api/session/cart", `{"cartId":""}`, "X-Telegram-Init-Data", signedInitData(1, time.Now()))
	if w.Code != http.StatusBadRequest || errorOf(t, w) != "Missing cartId" {
		t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
	}
}
