package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"time"
)

// CartAction — дискриминатор запроса к /api/cart.
type CartAction string

const (
	CartActionCreate CartAction = "create"
	CartActionAdd    CartAction = "add"
	CartActionGet    CartAction = "get"
	CartActionUpdate CartAction = "update"
	CartActionRemove CartAction = "remove"
)

// Mutates — меняет ли действие состояние корзины.
func (a CartAction) Mutates() bool {
	switch a {
	case CartActionCreate, CartActionAdd, CartActionUpdate, CartActionRemove:
		return true
	default:
		return false
	}
}

// CartCommand — тело запроса {action, ...payload}.
// Quantity хранится «как пришло», чтобы отличать число от строки/bool/отсутствия.
type CartCommand struct {
	Action        CartAction      `json:"action"`
	CartID        string          `json:"cartId,omitempty"`
	MerchandiseID string          `json:"merchandiseId,omitempty"`
	LineID        string          `json:"lineId,omitempty"`
	Quantity      json.RawMessage `json:"quantity,omitempty"`
}

var (
	errQuantityNotNumber  = errors.New("quantity must be a number")
	errQuantityNotInteger = errors.New("quantity must be a non-negative integer")
)

// QuantityJSON — число для поля Quantity.
func QuantityJSON(n int) json.RawMessage {
	return json.RawMessage(strconv.Itoa(n))
}

// ParseQuantity — разбирает quantity.
// present=false, если поле отсутствует или равно null.
// Ошибка, если значение не JSON-число либо не целое неотрицательное.
func (c CartCommand) ParseQuantity() (qty int, present bool, err error) {
	raw := bytes.TrimSpace(c.Quantity)
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, true, errQuantityNotNumber
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, true, errQuantityNotNumber
	}

	f, err := num.Float64()
	if err != nil {
		return 0, true, errQuantityNotNumber
	}
	if f < 0 || f != float64(int64(f)) || f > 1<<31-1 {
		return 0, true, errQuantityNotInteger
	}
	return int(f), true, nil
}

// CartCost — стоимость корзины.
type CartCost struct {
	SubtotalAmount Money  `json:"subtotalAmount"`
	TotalAmount    *Money `json:"totalAmount,omitempty"`
}

// CartLineCost — стоимость строки.
type CartLineCost struct {
	TotalAmount Money `json:"totalAmount"`
}

// MerchandiseProduct — денормализованный снимок товара внутри строки корзины.
type MerchandiseProduct struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Handle        string `json:"handle,omitempty"`
	FeaturedImage *Image `json:"featuredImage,omitempty"`
}

// Merchandise — вариант в строке корзины.
type Merchandise struct {
	ID      string             `json:"id"`
	Title   string             `json:"title"`
	Price   Money              `json:"price"`
	Product MerchandiseProduct `json:"product"`
}

// CartLine — строка корзины.
type CartLine struct {
	ID          string        `json:"id"`
	Quantity    int           `json:"quantity"`
	Cost        *CartLineCost `json:"cost,omitempty"`
	Merchandise Merchandise   `json:"merchandise"`
}

// CartLineEdge / CartLineConnection — connection-форма строк, как в Storefront API.
type CartLineEdge struct {
	Node CartLine `json:"node"`
}

type CartLineConnection struct {
	Edges []CartLineEdge `json:"edges"`
}

// Cart — корзина. Владелец — Shopify; клиент хранит только её id.
type Cart struct {
	ID            string              `json:"id"`
	CheckoutURL   string              `json:"checkoutUrl"`
	TotalQuantity int                 `json:"totalQuantity"`
	Cost          *CartCost           `json:"cost,omitempty"`
	Lines         *CartLineConnection `json:"lines,omitempty"`
}

// LineNodes — строки корзины плоским списком.
func (c *Cart) LineNodes() []CartLine {
	if c == nil || c.Lines == nil {
		return nil
	}
	out := make([]CartLine, 0, len(c.Lines.Edges))
	for _, e := range c.Lines.Edges {
		out = append(out, e.Node)
	}
	return out
}

// Line — строка по id.
func (c *Cart) Line(lineID string) (CartLine, bool) {
	for _, l := range c.LineNodes() {
		if l.ID == lineID {
			return l, true
		}
	}
	return CartLine{}, false
}

// Clone — глубокая копия корзины.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}
	cp := *c
	if c.Cost != nil {
		cost := *c.Cost
		if c.Cost.TotalAmount != nil {
			total := *c.Cost.TotalAmount
			cost.TotalAmount = &total
		}
		cp.Cost = &cost
	}
	if c.Lines != nil {
		edges := make([]CartLineEdge, len(c.Lines.Edges))
		copy(edges, c.Lines.Edges)
		for i := range edges {
			if n := edges[i].Node; n.Cost != nil {
				lc := *n.Cost
				edges[i].Node.Cost = &lc
			}
			if img := edges[i].Node.Merchandise.Product.FeaturedImage; img != nil {
				im := *img
				edges[i].Node.Merchandise.Product.FeaturedImage = &im
			}
		}
		cp.Lines = &CartLineConnection{Edges: edges}
	}
	return &cp
}

// UserError — ошибка валидации, которую Shopify возвращает в userErrors мутации.
type UserError struct {
	Field   []string `json:"field,omitempty"`
	Message string   `json:"message"`
}

// CartEvent — событие об изменении корзины (публикуется после успешной мутации).
type CartEvent struct {
	Action        CartAction `json:"action"`
	CartID        string     `json:"cartId"`
	TotalQuantity int        `json:"totalQuantity"`
	RequestID     string     `json:"requestId,omitempty"`
	OccurredAt    time.Time  `json:"occurredAt"`
}
