package shopify

import (
	"context"

	"github.com/Gunvolt24/tma_shop/internal/domain"
	"github.com/machinebox/graphql"
)

// ProductsPage — одна страница каталога (sortKey TITLE). after="" — первая страница.
func (c *Client) ProductsPage(ctx context.Context, first int, after string) (domain.ProductPage, error) {
	req := graphql.NewRequest(queryProductsPaged)
	req.Var("first", first)
	if after != "" {
		req.Var("after", after)
	} else {
		req.Var("after", nil)
	}

	var resp struct {
		Products struct {
			Edges []struct {
				Cursor string         `json:"cursor"`
				Node   domain.Product `json:"node"`
			} `json:"edges"`
			PageInfo domain.PageInfo `json:"pageInfo"`
		} `json:"products"`
	}
	if err := c.run(ctx, "products_page", req, &resp); err != nil {
		return domain.ProductPage{}, err
	}

	page := domain.ProductPage{
		Products: make([]domain.Product, 0, len(resp.Products.Edges)),
		PageInfo: resp.Products.PageInfo,
	}
	for _, e := range resp.Products.Edges {
		page.Products = append(page.Products, e.Node)
	}
	return page, nil
}
