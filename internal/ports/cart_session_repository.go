package ports

import "context"

// CartSessionRepository — серверное хранилище id корзины по пользователю Telegram.
// Семантика last-write-wins.
type CartSessionRepository interface {
	// GetCartID — ("", false, nil), если записи нет.
	GetCartID(ctx context.Context, userID int64) (string, bool, error)
	SaveCartID(ctx context.Context, userID int64, cartID string) error
	DeleteCartID(ctx context.Context, userID int64) error
}
