package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Gunvolt24/tma_shop/internal/ports"
)

// ServerWorker — дополнительный HTTP-сервер (например, /metrics на отдельном порту)
// в роли фонового компонента.
type ServerWorker struct {
	srv     *http.Server
	timeout time.Duration
	log     ports.Logger
}

func NewServerWorker(srv *http.Server, shutdownTimeout time.Duration, log ports.Logger) *ServerWorker {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 5 * time.Second
	}
	return &ServerWorker{srv: srv, timeout: shutdownTimeout, log: log}
}

// Run — блокирует до остановки сервера; штатная остановка не ошибка.
func (w *ServerWorker) Run(ctx context.Context) error {
	w.log.Infof(ctx, "auxiliary http server starting (addr=%s)", w.srv.Addr)
	if err := w.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (w *ServerWorker) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()
	return w.srv.Shutdown(ctx)
}
