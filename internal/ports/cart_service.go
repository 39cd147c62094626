package ports

import (
	"context"

	"github.com/Gunvolt24/tma_shop/internal/domain"
)

// CartDispatcher — диспетчер действий над корзиной (create/add/get/update/remove).
type CartDispatcher interface {
	Dispatch(ctx context.Context, cmd domain.CartCommand) (*domain.Cart, error)
}
