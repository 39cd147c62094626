package ports

import (
	"context"
	"encoding/json"

	"github.com/Gunvolt24/tma_shop/internal/domain"
)

// StorefrontRelay — сквозной GraphQL-прокси до Storefront API.
type StorefrontRelay interface {
	// Relay — отправить запрос с серверным токеном и вернуть тело ответа без изменений.
	Relay(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error)
}

// CartGateway — фиксированные операции над корзиной в Shopify.
// Мутации возвращают корзину и userErrors как есть; решение, что с ними делать, — за вызывающим.
type CartGateway interface {
	CreateCart(ctx context.Context) (*domain.Cart, []domain.UserError, error)
	AddLine(ctx context.Context, cartID, merchandiseID string, quantity int) (*domain.Cart, []domain.UserError, error)
	GetCart(ctx context.Context, cartID string) (*domain.Cart, error)
	UpdateLine(ctx context.Context, cartID, lineID string, quantity int) (*domain.Cart, []domain.UserError, error)
	RemoveLine(ctx context.Context, cartID, lineID string) (*domain.Cart, []domain.UserError, error)
}

// CatalogGateway — постраничное чтение каталога (курсорная пагинация).
type CatalogGateway interface {
	ProductsPage(ctx context.Context, first int, after string) (domain.ProductPage, error)
}
