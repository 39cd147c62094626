package tmaclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Gunvolt24/tma_shop/internal/domain"
	"github.com/Gunvolt24/tma_shop/internal/ports"
	"github.com/Gunvolt24/tma_shop/internal/shopify"
	"github.com/Gunvolt24/tma_shop/internal/usecase"
	"github.com/Gunvolt24/tma_shop/pkg/logger"
)

// relayCatalog — страница каталога через /api/storefront.
type relayCatalog struct {
	client *Client
}

var _ ports.CatalogGateway = (*relayCatalog)(nil)

func (r *relayCatalog) ProductsPage(ctx context.Context, first int, after string) (domain.ProductPage, error) {
	vars := map[string]any{"first": first, "after": nil}
	if after != "" {
		vars["after"] = after
	}

	raw, err := r.client.Storefront(ctx, shopify.ProductsPagedQuery, vars)
	if err != nil {
		return domain.ProductPage{}, err
	}

	var resp struct {
		Data *struct {
			Products struct {
				Edges []struct {
					Node domain.Product `json:"node"`
				} `json:"edges"`
				PageInfo domain.PageInfo `json:"pageInfo"`
			} `json:"products"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return domain.ProductPage{}, fmt.Errorf("decode products page: %w", err)
	}
	if resp.Data == nil {
		return domain.ProductPage{}, &domain.UpstreamError{Message: "Shopify Storefront error"}
	}

	page := domain.ProductPage{
		Products: make([]domain.Product, 0, len(resp.Data.Products.Edges)),
		PageInfo: resp.Data.Products.PageInfo,
	}
	for _, e := range resp.Data.Products.Edges {
		page.Products = append(page.Products, e.Node)
	}
	return page, nil
}

// CatalogLoader — полный каталог, собранный клиентом постранично через relay.
// Алгоритм пагинации общий с серверным GET /api/products.
type CatalogLoader struct {
	svc *usecase.CatalogService
}

// NewCatalogLoader — pageSize <= 0 даёт 100, больше 250 урезается до 250. log может быть nil.
func NewCatalogLoader(c *Client, pageSize int, log ports.Logger) *CatalogLoader {
	if log == nil {
		log = logger.NewNop()
	}
	return &CatalogLoader{
		svc: usecase.NewCatalogService(&relayCatalog{client: c}, nil, log, usecase.CatalogOptions{PageSize: pageSize, NoMetrics: true}),
	}
}

// LoadAll — каждый вызов проходит пагинацию с начала; ошибка страницы прерывает загрузку.
func (l *CatalogLoader) LoadAll(ctx context.Context) ([]domain.Product, error) {
	return l.svc.LoadAll(ctx)
}
