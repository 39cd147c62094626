package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Gunvolt24/tma_shop/internal/domain"
	"github.com/Gunvolt24/tma_shop/internal/ports"
	"github.com/Gunvolt24/tma_shop/pkg/metrics"
)

// Проверка, что CatalogService удовлетворяет порту загрузчика.
var _ ports.CatalogLoader = (*CatalogService)(nil)

const (
	DefaultPageSize = 100
	MaxPageSize     = 250 // предел Storefront API для first
	DefaultMaxPages = 100
)

// CatalogOptions — параметры пагинации.
type CatalogOptions struct {
	PageSize int
	MaxPages int
	// NoMetrics — не трогать серверные коллекторы (загрузчик на стороне клиента).
	NoMetrics bool
}

// CatalogService — загрузка полного каталога курсорной пагинацией.
type CatalogService struct {
	gateway  ports.CatalogGateway
	cache    ports.CatalogCache // nil — кэш выключен, каждый вызов идёт в Shopify
	log      ports.Logger
	pageSize int
	maxPages int
	observe  bool
}

// NewCatalogService — DI-конструктор. Размер страницы ограничивается [1, 250].
func NewCatalogService(gateway ports.CatalogGateway, cache ports.CatalogCache, log ports.Logger, opts CatalogOptions) *CatalogService {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &CatalogService{
		gateway:  gateway,
		cache:    cache,
		log:      log,
		pageSize: min(pageSize, MaxPageSize),
		maxPages: maxPages,
		observe:  !opts.NoMetrics,
	}
}

// LoadAll — все товары в порядке выдачи (сортировка TITLE на стороне Shopify).
// Пагинация каждый раз с начала; ошибка любой страницы прерывает загрузку без частичного результата.
func (s *CatalogService) LoadAll(ctx context.Context) ([]domain.Product, error) {
	key := "products:first=" + strconv.Itoa(s.pageSize)
	if s.cache != nil {
		if list, ok := s.cache.Get(ctx, key); ok {
			s.log.Infof(ctx, "catalog cache hit products=%d", len(list))
			return list, nil
		}
	}

	start := time.Now()
	products := make([]domain.Product, 0, s.pageSize)
	after := ""
	pages := 0
	hasNext := true

	for hasNext && pages < s.maxPages {
		page, err := s.gateway.ProductsPage(ctx, s.pageSize, after)
		if err != nil {
			s.log.Errorf(ctx, "catalog page %d failed after=%q err=%v", pages+1, after, err)
			return nil, fmt.Errorf("load catalog page %d: %w", pages+1, err)
		}
		pages++
		if s.observe {
			metrics.CatalogPagesFetched.Inc()
		}

		products = append(products, page.Products...)
		hasNext = page.PageInfo.HasNextPage

		if hasNext && page.PageInfo.EndCursor == "" {
			s.log.Warnf(ctx, "catalog page %d has next page but no cursor, stopping", pages)
			break
		}
		after = page.PageInfo.EndCursor
	}
	if hasNext && pages >= s.maxPages {
		s.log.Warnf(ctx, "catalog truncated at %d pages products=%d", pages, len(products))
	}

	if s.observe {
		metrics.CatalogProducts.Set(float64(len(products)))
	}
	s.log.Infof(ctx, "catalog loaded pages=%d products=%d took=%s", pages, len(products), time.Since(start))

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, products); err != nil {
			s.log.Warnf(ctx, "catalog cache set failed err=%v", err)
		}
	}
	return products, nil
}
