package shopify

import (
	"context"

	"github.com/Gunvolt24/tma_shop/internal/domain"
	"github.com/machinebox/graphql"
)

type cartPayload struct {
	Cart       *domain.Cart       `json:"cart"`
	UserErrors []domain.UserError `json:"userErrors"`
}

type lineInput struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

type lineUpdateInput struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CreateCart — cartCreate с пустым списком строк.
func (c *Client) CreateCart(ctx context.Context) (*domain.Cart, []domain.UserError, error) {
	req := graphql.NewRequest(mutationCartCreate)
	req.Var("lines", []lineInput{})

	var resp struct {
		CartCreate cartPayload `json:"cartCreate"`
	}
	if err := c.run(ctx, "cart_create", req, &resp); err != nil {
		return nil, nil, err
	}
	return resp.CartCreate.Cart, resp.CartCreate.UserErrors, nil
}

// AddLine — cartLinesAdd ровно с одной строкой.
func (c *Client) AddLine(ctx context.Context, cartID, merchandiseID string, quantity int) (*domain.Cart, []domain.UserError, error) {
	req := graphql.NewRequest(mutationCartLinesAdd)
	req.Var("cartId", cartID)
	req.Var("lines", []lineInput{{MerchandiseID: merchandiseID, Quantity: quantity}})

	var resp struct {
		CartLinesAdd cartPayload `json:"cartLinesAdd"`
	}
	if err := c.run(ctx, "cart_lines_add", req, &resp); err != nil {
		return nil, nil, err
	}
	return resp.CartLinesAdd.Cart, resp.CartLinesAdd.UserErrors, nil
}

// GetCart — cart(id). (nil, nil), если Shopify не знает такой корзины.
func (c *Client) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	req := graphql.NewRequest(queryCart)
	req.Var("id", cartID)

	var resp struct {
		Cart *domain.Cart `json:"cart"`
	}
	if err := c.run(ctx, "cart_get", req, &resp); err != nil {
		return nil, err
	}
	return resp.Cart, nil
}

// UpdateLine — cartLinesUpdate одной строки. quantity=0 Shopify трактует как удаление.
func (c *Client) UpdateLine(ctx context.Context, cartID, lineID string, quantity int) (*domain.Cart, []domain.UserError, error) {
	req := graphql.NewRequest(mutationCartLinesUpdate)
	req.Var("cartId", cartID)
	req.Var("lines", []lineUpdateInput{{ID: lineID, Quantity: quantity}})

	var resp struct {
		CartLinesUpdate cartPayload `json:"cartLinesUpdate"`
	}
	if err := c.run(ctx, "cart_lines_update", req, &resp); err != nil {
		return nil, nil, err
	}
	return resp.CartLinesUpdate.Cart, resp.CartLinesUpdate.UserErrors, nil
}

// RemoveLine — cartLinesRemove одной строки.
func (c *Client) RemoveLine(ctx context.Context, cartID, lineID string) (*domain.Cart, []domain.UserError, error) {
	req := graphql.NewRequest(mutationCartLinesRemove)
	req.Var("cartId", cartID)
	req.Var("lineIds", []string{lineID})

	var resp struct {
		CartLinesRemove cartPayload `json:"cartLinesRemove"`
	}
	if err := c.run(ctx, "cart_lines_remove", req, &resp); err != nil {
		return nil, nil, err
	}
	return resp.CartLinesRemove.Cart, resp.CartLinesRemove.UserErrors, nil
}
