package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Money — сумма и код валюты в формате Storefront API (amount приходит строкой).
type Money struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
}

// String — "12.50 USD", как цена выводится в витрине.
func (m Money) String() string {
	if m.CurrencyCode == "" {
		return m.Amount.String()
	}
	return m.Amount.StringFixed(2) + " " + m.CurrencyCode
}

// Image — изображение товара.
type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
}

// Variant — покупаемая единица товара.
type Variant struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price Money  `json:"price"`
}

// Product — товар каталога. Только чтение, источник — Storefront API.
type Product struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Handle        string    `json:"handle"`
	FeaturedImage *Image    `json:"featuredImage,omitempty"`
	Variants      []Variant `json:"variants"`
}

// DefaultVariant — первый вариант товара (витрина продаёт именно его).
func (p *Product) DefaultVariant() (Variant, bool) {
	if p == nil || len(p.Variants) == 0 {
		return Variant{}, false
	}
	return p.Variants[0], true
}

// UnmarshalJSON принимает как плоский список вариантов, так и connection-форму
// {"edges":[{"node":{...}}]}, в которой их отдаёт Storefront API.
func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	var raw struct {
		plain
		Variants json.RawMessage `json:"variants"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Product(raw.plain)
	p.Variants = nil

	if len(raw.Variants) == 0 || string(raw.Variants) == "null" {
		return nil
	}
	if raw.Variants[0] == '[' {
		return json.Unmarshal(raw.Variants, &p.Variants)
	}

	var conn struct {
		Edges []struct {
			Node Variant `json:"node"`
		} `json:"edges"`
	}
	if err := json.Unmarshal(raw.Variants, &conn); err != nil {
		return err
	}
	p.Variants = make([]Variant, 0, len(conn.Edges))
	for _, e := range conn.Edges {
		p.Variants = append(p.Variants, e.Node)
	}
	return nil
}

// PageInfo — курсор пагинации.
type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

// ProductPage — одна страница каталога.
type ProductPage struct {
	Products []Product
	PageInfo PageInfo
}

// CloneProducts — копия среза товаров (с вложенными вариантами).
func CloneProducts(list []Product) []Product {
	if list == nil {
		return nil
	}
	out := make([]Product, len(list))
	for i := range list {
		out[i] = list[i]
		if list[i].Variants != nil {
			out[i].Variants = append([]Variant(nil), list[i].Variants...)
		}
		if list[i].FeaturedImage != nil {
			img := *list[i].FeaturedImage
			out[i].FeaturedImage = &img
		}
	}
	return out
}
