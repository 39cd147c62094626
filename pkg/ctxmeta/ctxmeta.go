// Пакет ctxmeta — нейтральный слой для работы с метаданными запроса,
// которые прокидываются через context.Context (request_id, trace_id, пользователь Telegram).
// Идея: HTTP-слой и логгер зависят от небольшого общего пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемые типы — чтобы избежать коллизий).
	KeyRequestID      ctxKey = "request_id"
	KeyTelegramUserID ctxKey = "telegram_user_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithTelegramUserID кладёт id проверенного пользователя Telegram (0 — ничего не делает).
func WithTelegramUserID(ctx context.Context, userID int64) context.Context {
	if ctx == nil || userID == 0 {
		return ctx
	}
	return context.WithValue(ctx, KeyTelegramUserID, userID)
}

// TelegramUserIDFromContext достаёт id пользователя Telegram.
func TelegramUserIDFromContext(ctx context.Context) (int64, bool) {
	if ctx == nil {
		return 0, false
	}
	if v, ok := ctx.Value(KeyTelegramUserID).(int64); ok && v != 0 {
		return v, true
	}
	return 0, false
}
