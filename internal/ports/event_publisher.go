package ports

import (
	"context"

	"github.com/Gunvolt24/tma_shop/internal/domain"
)

// CartEventPublisher — публикация событий корзины во внешний брокер.
type CartEventPublisher interface {
	Publish(ctx context.Context, event domain.CartEvent) error
	Close() error
}
