package ports

import "context"

// BackgroundWorker — фоновый компонент приложения, живущий до отмены контекста.
type BackgroundWorker interface {
	Run(ctx context.Context) error
	Close() error
}

// CartSessionPurger — хранилище сессий, умеющее удалять устаревшие записи.
type CartSessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}
