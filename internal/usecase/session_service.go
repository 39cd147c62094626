package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/tma_shop/internal/domain"
	"github.com/Gunvolt24/tma_shop/internal/ports"
)

// SessionService — серверная привязка «пользователь Telegram -> id корзины».
type SessionService struct {
	repo ports.CartSessionRepository
	log  ports.Logger
}

// NewSessionService — DI-конструктор.
func NewSessionService(repo ports.CartSessionRepository, log ports.Logger) *SessionService {
	return &SessionService{repo: repo, log: log}
}

// CartID — ("", false, nil), если пользователь ещё не создавал корзину.
func (s *SessionService) CartID(ctx context.Context, userID int64) (string, bool, error) {
	id, ok, err := s.repo.GetCartID(ctx, userID)
	if err != nil {
		s.log.Errorf(ctx, "session get failed user=%d err=%v", userID, err)
		return "", false, fmt.Errorf("get cart session: %w", err)
	}
	return id, ok, nil
}

// SaveCartID — запомнить id корзины (last-write-wins).
func (s *SessionService) SaveCartID(ctx context.Context, userID int64, cartID string) error {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return &domain.BadRequestError{Field: "cartId"}
	}
	if err := s.repo.SaveCartID(ctx, userID, cartID); err != nil {
		s.log.Errorf(ctx, "session save failed user=%d err=%v", userID, err)
		return fmt.Errorf("save cart session: %w", err)
	}
	s.log.Infof(ctx, "session saved user=%d cart_id=%s", userID, cartID)
	return nil
}

// ClearCartID — забыть id корзины. Отсутствие записи не ошибка.
func (s *SessionService) ClearCartID(ctx context.Context, userID int64) error {
	if err := s.repo.DeleteCartID(ctx, userID); err != nil {
		s.log.Errorf(ctx, "session delete failed user=%d err=%v", userID, err)
		return fmt.Errorf("delete cart session: %w", err)
	}
	return nil
}
