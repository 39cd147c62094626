package tmaclient

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"

	"github.com/Gunvolt24/tma_shop/internal/domain"
)

var (
	ErrLineBusy = errors.New("cart line is busy")

	// Тексты показываются пользователю как есть.
	ErrEmptyCart        = errors.New("Your cart is empty")
	ErrCheckoutNotReady = errors.New("Checkout link is not ready yet")
)

// CartAPI — диспетчер корзины (POST /api/cart). *Client его реализует.
type CartAPI interface {
	Cart(ctx context.Context, cmd domain.CartCommand) (*domain.Cart, error)
}

var _ CartAPI = (*Client)(nil)

// Snapshot — копия состояния для отрисовки.
type Snapshot struct {
	Cart    *domain.Cart    // nil — корзины нет
	Loading map[string]bool // строки (или merchandiseId для add) с мутацией в полёте
	Err     error           // последняя ошибка Refresh/мутации; сбрасывается успешным ответом
}

// Synchronizer — состояние корзины на клиенте: id хранится в CartIDStore,
// сама корзина всегда берётся из ответов сервиса (последний ответ побеждает).
type Synchronizer struct {
	api   CartAPI
	store CartIDStore

	createMu sync.Mutex // одна корзина на параллельные Add

	mu      sync.Mutex
	cartID  string
	cart    *domain.Cart
	loading map[string]bool
	lastErr error
	subs    map[int]chan Snapshot
	nextSub int
}

func NewSynchronizer(api CartAPI, store CartIDStore) *Synchronizer {
	return &Synchronizer{
		api:     api,
		store:   store,
		loading: make(map[string]bool),
		subs:    make(map[int]chan Snapshot),
	}
}

// Mount — восстановить id из хранилища и получить актуальную корзину.
// Корзина, которой больше нет (get → null), стирает сохранённый id.
func (s *Synchronizer) Mount(ctx context.Context) error {
	id, ok, err := s.store.Get(ctx)
	if err != nil {
		return fmt.Errorf("restore cart id: %w", err)
	}
	if !ok {
		return nil
	}

	s.mu.Lock()
	s.cartID = id
	s.mu.Unlock()

	return s.fetch(ctx, id)
}

// Refresh — перечитать корзину по текущему id; без id ничего не делает.
func (s *Synchronizer) Refresh(ctx context.Context) error {
	s.mu.Lock()
	id := s.cartID
	s.mu.Unlock()

	if id == "" {
		return nil
	}
	return s.fetch(ctx, id)
}

// Run — Refresh на каждый сигнал любого из триггеров до отмены ctx.
// Ошибки Refresh попадают в Snapshot.Err. Триггеры останавливаются при выходе.
func (s *Synchronizer) Run(ctx context.Context, triggers ...RefreshTrigger) error {
	fired := make(chan struct{}, 1)
	var wg sync.WaitGroup

	for _, t := range triggers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case <-t.C():
					select {
					case fired <- struct{}{}:
					default:
					}
				}
			}
		}()
	}
	defer func() {
		for _, t := range triggers {
			t.Stop()
		}
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-fired:
			_ = s.Refresh(ctx)
		}
	}
}

func (s *Synchronizer) fetch(ctx context.Context, id string) error {
	cart, err := s.api.Cart(ctx, domain.CartCommand{Action: domain.CartActionGet, CartID: id})
	if err != nil {
		s.fail(err)
		return err
	}
	if cart == nil {
		if err := s.store.Clear(ctx); err != nil {
			s.fail(err)
			return fmt.Errorf("clear cart id: %w", err)
		}
		s.mu.Lock()
		if s.cartID == id {
			s.cartID = ""
			s.cart = nil
		}
		s.lastErr = nil
		s.mu.Unlock()
		s.notify()
		return nil
	}
	s.apply(cart)
	return nil
}

// Add — положить вариант в корзину, при необходимости создав её.
// qty <= 0 даёт количество по умолчанию (1) на стороне сервиса.
func (s *Synchronizer) Add(ctx context.Context, merchandiseID string, qty int) error {
	if !s.begin(merchandiseID) {
		return ErrLineBusy
	}
	defer s.end(merchandiseID)

	cartID, err := s.ensureCart(ctx)
	if err != nil {
		s.fail(err)
		return err
	}

	cmd := domain.CartCommand{Action: domain.CartActionAdd, CartID: cartID, MerchandiseID: merchandiseID}
	if qty > 0 {
		cmd.Quantity = domain.QuantityJSON(qty)
	}
	return s.mutate(ctx, cmd)
}

// UpdateQuantity — новое количество строки; ввод приводится Clamp к [1, 999].
func (s *Synchronizer) UpdateQuantity(ctx context.Context, lineID string, qty any) error {
	cartID, ok := s.currentID()
	if !ok {
		return ErrEmptyCart
	}
	if !s.begin(lineID) {
		return ErrLineBusy
	}
	defer s.end(lineID)

	return s.mutate(ctx, domain.CartCommand{
		Action:   domain.CartActionUpdate,
		CartID:   cartID,
		LineID:   lineID,
		Quantity: domain.QuantityJSON(Clamp(qty)),
	})
}

// Remove — удалить строку.
func (s *Synchronizer) Remove(ctx context.Context, lineID string) error {
	cartID, ok := s.currentID()
	if !ok {
		return ErrEmptyCart
	}
	if !s.begin(lineID) {
		return ErrLineBusy
	}
	defer s.end(lineID)

	return s.mutate(ctx, domain.CartCommand{Action: domain.CartActionRemove, CartID: cartID, LineID: lineID})
}

// Checkout — ссылка на оформление заказа.
func (s *Synchronizer) Checkout() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart == nil || s.cart.TotalQuantity == 0 {
		return "", ErrEmptyCart
	}
	if s.cart.CheckoutURL == "" {
		return "", ErrCheckoutNotReady
	}
	return s.cart.CheckoutURL, nil
}

// Snapshot — копия текущего состояния.
func (s *Synchronizer) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe — снимки состояния на каждое изменение. Медленный подписчик получает
// только последний снимок. cancel закрывает канал.
func (s *Synchronizer) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (s *Synchronizer) ensureCart(ctx context.Context) (string, error) {
	s.createMu.Lock()
	defer s.createMu.Unlock()

	if id, ok := s.currentID(); ok {
		return id, nil
	}

	cart, err := s.api.Cart(ctx, domain.CartCommand{Action: domain.CartActionCreate})
	if err != nil {
		return "", err
	}
	if cart == nil || cart.ID == "" {
		return "", &domain.UpstreamError{Message: "Shopify returned no cart"}
	}
	if err := s.store.Set(ctx, cart.ID); err != nil {
		return "", fmt.Errorf("persist cart id: %w", err)
	}
	s.apply(cart)
	return cart.ID, nil
}

func (s *Synchronizer) mutate(ctx context.Context, cmd domain.CartCommand) error {
	cart, err := s.api.Cart(ctx, cmd)
	if err != nil {
		s.fail(err)
		return err
	}
	if cart == nil {
		err := &domain.UpstreamError{Message: "Shopify returned no cart"}
		s.fail(err)
		return err
	}
	s.apply(cart)
	return nil
}

func (s *Synchronizer) apply(cart *domain.Cart) {
	s.mu.Lock()
	s.cart = cart.Clone()
	if cart.ID != "" {
		s.cartID = cart.ID
	}
	s.lastErr = nil
	s.mu.Unlock()
	s.notify()
}

func (s *Synchronizer) fail(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	s.notify()
}

func (s *Synchronizer) currentID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartID, s.cartID != ""
}

func (s *Synchronizer) begin(key string) bool {
	s.mu.Lock()
	if s.loading[key] {
		s.mu.Unlock()
		return false
	}
	s.loading[key] = true
	s.mu.Unlock()
	s.notify()
	return true
}

func (s *Synchronizer) end(key string) {
	s.mu.Lock()
	delete(s.loading, key)
	s.mu.Unlock()
	s.notify()
}

func (s *Synchronizer) snapshotLocked() Snapshot {
	return Snapshot{
		Cart:    s.cart.Clone(),
		Loading: maps.Clone(s.loading),
		Err:     s.lastErr,
	}
}

func (s *Synchronizer) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshotLocked()
	for _, ch := range s.subs {
		// Вытесняем непрочитанный снимок.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
