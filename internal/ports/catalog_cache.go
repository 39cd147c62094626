package ports

import (
	"context"

	"github.com/Gunvolt24/tma_shop/internal/domain"
)

// CatalogCache — кэш снимков каталога.
// Требования к реализации: потокобезопасность; возврат копий.
type CatalogCache interface {
	// Get — (list, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, key string) ([]domain.Product, bool)

	// Set — сохранить снимок.
	Set(ctx context.Context, key string, products []domain.Product) error
}
