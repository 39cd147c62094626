package memory

import (
	"context"
	"time"

	"github.com/Gunvolt24/tma_shop/internal/ports"
)

var _ ports.CartSessionRepository = (*SessionStore)(nil)

// SessionStore — id корзины по пользователю Telegram в памяти процесса.
// TTL скользящий: активный пользователь не теряет корзину.
type SessionStore struct {
	lru *LRUCacheTTL[int64, string]
}

func NewSessionStore(capacity int, ttl time.Duration) *SessionStore {
	return &SessionStore{lru: NewLRUCacheTTL[int64](Options[string]{
		Name:     "session",
		Capacity: capacity,
		TTL:      ttl,
		Sliding:  true,
	})}
}

func (s *SessionStore) GetCartID(_ context.Context, userID int64) (string, bool, error) {
	id, ok := s.lru.Get(userID)
	return id, ok, nil
}

func (s *SessionStore) SaveCartID(_ context.Context, userID int64, cartID string) error {
	s.lru.Set(userID, cartID)
	return nil
}

func (s *SessionStore) DeleteCartID(_ context.Context, userID int64) error {
	s.lru.Delete(userID)
	return nil
}
