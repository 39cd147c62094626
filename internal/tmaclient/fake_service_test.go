package tmaclient_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Gunvolt24/tma_shop/internal/domain"
	"github.com/Gunvolt24/tma_shop/internal/tmaclient"
)

// fakeService — минимальная имитация API сервиса: корзины в памяти,
// постраничный каталог для /api/storefront и серверная сессия.
type fakeService struct {
	t *testing.T

	mu       sync.Mutex
	carts    map[string]*domain.Cart
	nextID   int
	commands []domain.CartCommand

	// Каталог: страницы по курсору "" → "c1" → "c2" ...
	pages      [][]string
	failOnPage int // 1-based; 0 — не падать
	relayCalls int

	session  string
	initData []string

	block chan struct{} // если не nil, мутации ждут закрытия
}

func newFakeService(t *testing.T) (*fakeService, *tmaclient.Client) {
	t.Helper()
	f := &fakeService{t: t, carts: make(map[string]*domain.Cart)}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/cart", f.handleCart)
	mux.HandleFunc("/api/storefront", f.handleStorefront)
	mux.HandleFunc("/api/session/cart", f.handleSession)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return f, tmaclient.NewClient(srv.URL, tmaclient.WithHTTPClient(srv.Client()), tmaclient.WithInitData("query_id=q&user=u"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeService) Commands() []domain.CartCommand {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.CartCommand(nil), f.commands...)
}

func (f *fakeService) dropCart(id string) {
	f.mu.Lock()
	delete(f.carts, id)
	f.mu.Unlock()
}

func (f *fakeService) handleCart(w http.ResponseWriter, r *http.Request) {
	var cmd domain.CartCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid JSON body"})
		return
	}

	if cmd.Action.Mutates() && f.block != nil {
		<-f.block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, cmd)

	switch cmd.Action {
	case domain.CartActionCreate:
		f.nextID++
		id := fmt.Sprintf("gid://shopify/Cart/%d", f.nextID)
		f.carts[id] = &domain.Cart{ID: id, CheckoutURL: "https://shop.example/checkout/" + id, Lines: &domain.CartLineConnection{}}
		writeJSON(w, http.StatusOK, f.carts[id])
	case domain.CartActionGet:
		cart, ok := f.carts[cmd.CartID]
		if !ok {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		writeJSON(w, http.StatusOK, cart)
	case domain.CartActionAdd:
		cart, ok := f.carts[cmd.CartID]
		if !ok {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "The specified cart does not exist."})
			return
		}
		qty, present, _ := cmd.ParseQuantity()
		if !present || qty == 0 {
			qty = 1
		}
		lineID := fmt.Sprintf("gid://shopify/CartLine/%d", len(cart.Lines.Edges)+1)
		cart.Lines.Edges = append(cart.Lines.Edges, domain.CartLineEdge{Node: domain.CartLine{
			ID:          lineID,
			Quantity:    qty,
			Merchandise: domain.Merchandise{ID: cmd.MerchandiseID},
		}})
		recount(cart)
		writeJSON(w, http.StatusOK, cart)
	case domain.CartActionUpdate:
		cart := f.carts[cmd.CartID]
		qty, _, _ := cmd.ParseQuantity()
		for i := range cart.Lines.Edges {
			if cart.Lines.Edges[i].Node.ID == cmd.LineID {
				cart.Lines.Edges[i].Node.Quantity = qty
			}
		}
		recount(cart)
		writeJSON(w, http.StatusOK, cart)
	case domain.CartActionRemove:
		cart := f.carts[cmd.CartID]
		kept := cart.Lines.Edges[:0]
		for _, e := range cart.Lines.Edges {
			if e.Node.ID != cmd.LineID {
				kept = append(kept, e)
			}
		}
		cart.Lines.Edges = kept
		recount(cart)
		writeJSON(w, http.StatusOK, cart)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Unknown action"})
	}
}

func recount(c *domain.Cart) {
	total := 0
	for _, e := range c.Lines.Edges {
		total += e.Node.Quantity
	}
	c.TotalQuantity = total
}

func (f *fakeService) handleStorefront(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query     string         `json:"query"`
		Variables map[string]any `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid JSON body"})
		return
	}

	f.mu.Lock()
	f.relayCalls++
	call := f.relayCalls
	f.mu.Unlock()

	if f.failOnPage == call {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Throttled"})
		return
	}

	idx := 0
	if after, ok := body.Variables["after"].(string); ok && after != "" {
		_, _ = fmt.Sscanf(after, "c%d", &idx)
	}

	type edge struct {
		Cursor string         `json:"cursor"`
		Node   map[string]any `json:"node"`
	}
	edges := make([]edge, 0)
	for _, title := range f.pages[idx] {
		edges = append(edges, edge{Cursor: title, Node: map[string]any{
			"id":    "gid://shopify/Product/" + title,
			"title": title,
			"variants": map[string]any{"edges": []any{
				map[string]any{"node": map[string]any{
					"id":    "gid://shopify/ProductVariant/" + title,
					"title": "Default Title",
					"price": map[string]any{"amount": "9.90", "currencyCode": "EUR"},
				}},
			}},
		}})
	}
	hasNext := idx+1 < len(f.pages)
	endCursor := ""
	if hasNext {
		endCursor = fmt.Sprintf("c%d", idx+1)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{
			"products": map[string]any{
				"edges":    edges,
				"pageInfo": map[string]any{"hasNextPage": hasNext, "endCursor": endCursor},
			},
		},
	})
}

func (f *fakeService) handleSession(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.initData = append(f.initData, r.Header.Get(tmaclient.InitDataHeader))

	switch r.Method {
	case http.MethodGet:
		if f.session == "" {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "cart session not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"cartId": f.session})
	case http.MethodPut:
		var body struct {
			CartID string `json:"cartId"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.session = body.CartID
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		f.session = ""
		w.WriteHeader(http.StatusNoContent)
	}
}
