package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/tma_shop/internal/ports"
)

// SessionJanitor — периодическая очистка устаревших привязок пользователь → корзина.
type SessionJanitor struct {
	purger   ports.CartSessionPurger
	interval time.Duration
	log      ports.Logger

	stopOnce sync.Once
	stop     chan struct{}
}

// NewSessionJanitor — interval <= 0 заменяется на час.
func NewSessionJanitor(purger ports.CartSessionPurger, interval time.Duration, log ports.Logger) *SessionJanitor {
	if interval <= 0 {
		interval = time.Hour
	}
	return &SessionJanitor{
		purger:   purger,
		interval: interval,
		log:      log,
		stop:     make(chan struct{}),
	}
}

// Run — первая очистка сразу, дальше по тикеру. Ошибки очистки только логируются.
// Возвращает ctx.Err() при отмене контекста и nil после Close.
func (j *SessionJanitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		j.purgeOnce(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-j.stop:
			return nil
		case <-ticker.C:
		}
	}
}

func (j *SessionJanitor) purgeOnce(ctx context.Context) {
	n, err := j.purger.PurgeExpired(ctx)
	switch {
	case err != nil:
		if ctx.Err() == nil {
			j.log.Warnf(ctx, "purge cart sessions: %v", err)
		}
	case n > 0:
		j.log.Infof(ctx, "purged %d expired cart sessions", n)
	}
}

// Close — останавливает Run; повторный вызов безопасен.
func (j *SessionJanitor) Close() error {
	j.stopOnce.Do(func() { close(j.stop) })
	return nil
}
