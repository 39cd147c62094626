package config_test

import (
	"slices"
	"testing"
	"time"

	cfg "github.com/Gunvolt24/tma_shop/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("SHOP_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" || c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP defaults wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.HandlerTimeout != 15*time.Second || c.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("HTTP handler/graceful timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.StaticDir != "" {
		t.Fatalf("HTTP.StaticDir: want empty, got %q", c.HTTP.StaticDir)
	}

	// Shopify: учётных данных по умолчанию нет.
	if c.Shopify.ShopDomain != "" || c.Shopify.StorefrontToken != "" {
		t.Fatalf("Shopify credentials must be empty by default: %+v", c.Shopify)
	}
	if c.HasShopifyCredentials() {
		t.Fatalf("HasShopifyCredentials must be false by default")
	}
	if c.Shopify.APIVersion != "2024-07" || c.Shopify.Timeout != 30*time.Second {
		t.Fatalf("Shopify defaults wrong: %+v", c.Shopify)
	}

	// Catalog
	if c.Catalog.PageSize != 100 || c.Catalog.MaxPages != 100 || c.Catalog.CacheTTL != 0 {
		t.Fatalf("Catalog defaults wrong: %+v", c.Catalog)
	}

	// Session
	if c.Session.Backend != "memory" || c.Session.TTL != 720*time.Hour || c.Session.Capacity != 10000 || c.Session.PurgeInterval != time.Hour {
		t.Fatalf("Session defaults wrong: %+v", c.Session)
	}

	// Telegram
	if c.Telegram.BotToken != "" || c.Telegram.InitDataMaxAge != 24*time.Hour {
		t.Fatalf("Telegram defaults wrong: %+v", c.Telegram)
	}

	// Postgres
	if c.Postgres.DSN == "" || c.Postgres.MaxConns != 10 || !c.Postgres.Migrate {
		t.Fatalf("Postgres defaults wrong: %+v", c.Postgres)
	}

	// Kafka
	if c.Kafka.Enabled {
		t.Fatalf("Kafka.Enabled: want false")
	}
	if !slices.Equal(c.Kafka.Brokers, []string{"kafka:9092"}) || c.Kafka.Topic != "cart-events" {
		t.Fatalf("Kafka defaults wrong: %+v", c.Kafka)
	}

	// Tracing
	if c.Tracing.Enabled || c.Tracing.ServiceName != "tma-shop" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "SHOP_TEST_OVR"

	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_HANDLER_TIMEOUT", "4500ms")
	t.Setenv(p+"_HTTP_STATIC_DIR", "./web")

	t.Setenv(p+"_SHOPIFY_SHOP_DOMAIN", "demo.myshopify.com")
	t.Setenv(p+"_SHOPIFY_STOREFRONT_TOKEN", "secret")
	t.Setenv(p+"_SHOPIFY_API_VERSION", "2025-01")

	t.Setenv(p+"_CATALOG_PAGE_SIZE", "250")
	t.Setenv(p+"_CATALOG_CACHE_TTL", "1m")

	t.Setenv(p+"_SESSION_BACKEND", "postgres")
	t.Setenv(p+"_TELEGRAM_BOT_TOKEN", "123:abc")

	t.Setenv(p+"_KAFKA_ENABLED", "true")
	t.Setenv(p+"_KAFKA_BROKERS", "k1:9092,k2:9093")

	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.HTTP.Addr != ":9999" || c.HTTP.HandlerTimeout != 4500*time.Millisecond || c.HTTP.StaticDir != "./web" {
		t.Fatalf("HTTP overrides wrong: %+v", c.HTTP)
	}
	if !c.HasShopifyCredentials() || c.Shopify.APIVersion != "2025-01" {
		t.Fatalf("Shopify overrides wrong: %+v", c.Shopify)
	}
	if c.Catalog.PageSize != 250 || c.Catalog.CacheTTL != time.Minute {
		t.Fatalf("Catalog overrides wrong: %+v", c.Catalog)
	}
	if c.Session.Backend != "postgres" || c.Telegram.BotToken != "123:abc" {
		t.Fatalf("Session/Telegram overrides wrong: %+v %+v", c.Session, c.Telegram)
	}
	if !c.Kafka.Enabled || !slices.Equal(c.Kafka.Brokers, []string{"k1:9092", "k2:9093"}) {
		t.Fatalf("Kafka overrides wrong: %+v", c.Kafka)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd override wrong: %+v", c.Logger)
	}
}

// Тоже меняем окружение — но с невалидным значением.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "SHOP_TEST_BAD"
	t.Setenv(p+"_SHOPIFY_TIMEOUT", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}
