package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/tma_shop/config"
	cachemem "github.com/Gunvolt24/tma_shop/internal/cache/memory"
	"github.com/Gunvolt24/tma_shop/internal/kafka"
	"github.com/Gunvolt24/tma_shop/internal/ports"
	"github.com/Gunvolt24/tma_shop/internal/repo/postgres"
	"github.com/Gunvolt24/tma_shop/internal/shopify"
	rest "github.com/Gunvolt24/tma_shop/internal/transport/http"
	"github.com/Gunvolt24/tma_shop/internal/usecase"
	"github.com/Gunvolt24/tma_shop/pkg/logger"
	"github.com/Gunvolt24/tma_shop/pkg/metrics"
	"github.com/Gunvolt24/tma_shop/pkg/telegram"
	"github.com/Gunvolt24/tma_shop/pkg/telemetry"
	"github.com/Gunvolt24/tma_shop/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App — собранное приложение: HTTP-сервер и фоновые компоненты.
type App struct {
	Logger          ports.Logger             // логгер
	HTTPServer      *http.Server             // HTTP-сервер
	Workers         []ports.BackgroundWorker // метрики, очистка сессий и т.п.
	gracefulTimeout time.Duration            // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// sessionBackend — хранилище привязок и освобождение его ресурсов.
type sessionBackend struct {
	repo    ports.CartSessionRepository
	janitor ports.BackgroundWorker // nil для памяти
	close   func()
}

// newSessionBackend — memory (по умолчанию) или postgres.
func newSessionBackend(ctx context.Context, cfg *config.Config, log ports.Logger) (*sessionBackend, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Session.Backend)) {
	case "", "memory":
		return &sessionBackend{
			repo:  cachemem.NewSessionStore(cfg.Session.Capacity, cfg.Session.TTL),
			close: func() {},
		}, nil
	case "postgres":
		if cfg.Postgres.Migrate {
			if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
				return nil, err
			}
		}
		pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, err
		}
		repo := postgres.NewCartSessionRepository(pool, cfg.Session.TTL)
		return &sessionBackend{
			repo:    repo,
			janitor: usecase.NewSessionJanitor(repo, cfg.Session.PurgeInterval, log),
			close:   pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}
	closeLogger := func() {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, telemetry.TracingConfig{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
			ShopDomain:  cfg.Shopify.ShopDomain,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Хранилище привязок пользователь → корзина.
	sessions, err := newSessionBackend(ctx, cfg, logg)
	if err != nil {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		closeLogger()
		return nil, func() {}, err
	}

	if !cfg.HasShopifyCredentials() {
		logg.Warnf(ctx, "shopify credentials are not configured, storefront requests will fail with 500")
	}
	if cfg.Telegram.BotToken == "" {
		logg.Warnf(ctx, "telegram bot token is not configured, session endpoints will respond 500")
	}

	// Клиент Storefront API.
	storefront := shopify.NewClient(shopify.Config{
		ShopDomain:      cfg.Shopify.ShopDomain,
		StorefrontToken: cfg.Shopify.StorefrontToken,
		APIVersion:      cfg.Shopify.APIVersion,
		Endpoint:        cfg.Shopify.Endpoint,
		Timeout:         cfg.Shopify.Timeout,
	}, logg)

	// Публикация событий корзины (опционально).
	var events ports.CartEventPublisher
	if cfg.Kafka.Enabled {
		events = kafka.NewProducer(&kafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
		}, logg)
		logg.Infof(ctx, "cart events enabled topic=%s brokers=%v", cfg.Kafka.Topic, cfg.Kafka.Brokers)
	}

	// Кэш каталога (только при положительном TTL).
	var catalogCache ports.CatalogCache
	if cfg.Catalog.CacheTTL > 0 {
		catalogCache = cachemem.NewCatalogCache(cfg.Catalog.CacheCapacity, cfg.Catalog.CacheTTL)
	}

	// Сборка зависимостей доменного слоя.
	cartService := usecase.NewCartService(storefront, validate.NewCartCommandValidator(), events, logg)
	catalogService := usecase.NewCatalogService(storefront, catalogCache, logg, usecase.CatalogOptions{
		PageSize: cfg.Catalog.PageSize,
		MaxPages: cfg.Catalog.MaxPages,
	})
	sessionService := usecase.NewSessionService(sessions.repo, logg)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(rest.Deps{
		Relay:    storefront,
		Carts:    cartService,
		Catalog:  catalogService,
		Sessions: sessionService,
		Verifier: telegram.NewVerifier(cfg.Telegram.BotToken, cfg.Telegram.InitDataMaxAge),
		Log:      logg,
		Timeout:  cfg.HTTP.HandlerTimeout,
	})
	router := rest.NewRouter(httpHandler, cfg.HTTP.StaticDir, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Фоновые компоненты.
	var workers []ports.BackgroundWorker
	if addr := cfg.Metrics.Addr; addr != "" && addr != cfg.HTTP.Addr {
		workers = append(workers, NewServerWorker(&http.Server{
			Addr:              addr,
			Handler:           promhttp.Handler(),
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		}, cfg.HTTP.GracefulTimeout, logg))
	}
	if sessions.janitor != nil {
		workers = append(workers, sessions.janitor)
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Workers:         workers,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if events != nil {
			if err := events.Close(); err != nil {
				logg.Warnf(ctx, "cart events publisher close error: %v", err)
			}
		}

		sessions.close()
		closeLogger()
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и фоновые компоненты; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, len(a.Workers)+1)

	// Запуск фоновых компонентов.
	for _, w := range a.Workers {
		go func() {
			if err := w.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка фоновых компонентов.
	for _, w := range a.Workers {
		if err := w.Close(); err != nil {
			a.Logger.Warnf(ctx, "background component close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
