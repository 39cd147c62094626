package ports

import (
	"context"

	"github.com/Gunvolt24/tma_shop/internal/domain"
)

// CatalogLoader — полный каталог одним списком.
type CatalogLoader interface {
	LoadAll(ctx context.Context) ([]domain.Product, error)
}
