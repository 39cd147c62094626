package ports

import (
	"context"

	"github.com/Gunvolt24/tma_shop/internal/domain"
)

// CartCommandValidator — проверка обязательных полей команды до обращения к Shopify.
type CartCommandValidator interface {
	Validate(ctx context.Context, cmd *domain.CartCommand) error
}
