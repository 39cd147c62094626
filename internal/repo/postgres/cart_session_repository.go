package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/tma_shop/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что CartSessionRepository удовлетворяет интерфейсу порта.
var _ ports.CartSessionRepository = (*CartSessionRepository)(nil)

// CartSessionRepository — id корзины по пользователю Telegram в Postgres (pgxpool).
type CartSessionRepository struct {
	pool *pgxpool.Pool
	ttl  time.Duration // <= 0 — записи не устаревают
}

// NewCartSessionRepository — конструктор. Записи старше ttl считаются отсутствующими.
func NewCartSessionRepository(pool *pgxpool.Pool, ttl time.Duration) *CartSessionRepository {
	return &CartSessionRepository{pool: pool, ttl: ttl}
}

// GetCartID — ("", false, nil), если записи нет или она устарела.
func (r *CartSessionRepository) GetCartID(ctx context.Context, userID int64) (string, bool, error) {
	var (
		cartID    string
		updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT cart_id, updated_at
		FROM cart_sessions
		WHERE telegram_user_id = $1
	`, userID).Scan(&cartID, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select cart session: %w", err)
	}

	if r.ttl > 0 && time.Since(updatedAt) > r.ttl {
		return "", false, nil
	}
	return cartID, true, nil
}

// SaveCartID — upsert по telegram_user_id (last-write-wins).
func (r *CartSessionRepository) SaveCartID(ctx context.Context, userID int64, cartID string) error {
	if cartID == "" {
		return errors.New("cart_id is required")
	}
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO cart_sessions (telegram_user_id, cart_id)
		VALUES ($1, $2)
		ON CONFLICT (telegram_user_id) DO UPDATE SET
			cart_id = EXCLUDED.cart_id,
			updated_at = now()
	`, userID, cartID); err != nil {
		return fmt.Errorf("upsert cart session: %w", err)
	}
	return nil
}

// DeleteCartID — удаление; отсутствие строки не ошибка.
func (r *CartSessionRepository) DeleteCartID(ctx context.Context, userID int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM cart_sessions WHERE telegram_user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete cart session: %w", err)
	}
	return nil
}

// PurgeExpired — удалить устаревшие записи; возвращает число удалённых.
func (r *CartSessionRepository) PurgeExpired(ctx context.Context) (int64, error) {
	if r.ttl <= 0 {
		return 0, nil
	}
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM cart_sessions
		WHERE updated_at < now() - make_interval(secs => $1)
	`, r.ttl.Seconds())
	if err != nil {
		return 0, fmt.Errorf("purge cart sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
