package logger_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/tma_shop/pkg/ctxmeta"
	"github.com/Gunvolt24/tma_shop/pkg/logger"
)

func TestNewZapLogger_DevAndProd(t *testing.T) {
	for _, prod := range []bool{false, true} {
		l, cleanup, err := logger.NewZapLogger(prod)
		if err != nil {
			t.Fatalf("NewZapLogger(%v): %v", prod, err)
		}
		if l.Base() == nil || l.Sugared() == nil {
			t.Fatalf("logger internals must be set")
		}
		ctx := ctxmeta.WithRequestID(context.Background(), "req-1")
		l.Infof(ctx, "hello %s", "world")
		_ = cleanup()
	}
}

func TestNewNop_DoesNotPanic(t *testing.T) {
	l := logger.NewNop()
	ctx := ctxmeta.WithTelegramUserID(context.Background(), 42)
	l.Infof(ctx, "info")
	l.Warnf(ctx, "warn")
	l.Errorf(context.Background(), "error")
}
