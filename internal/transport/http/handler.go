package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Gunvolt24/tma_shop/internal/ports"
	"github.com/Gunvolt24/tma_shop/pkg/telegram"
	"github.com/gin-gonic/gin"
)

const maxBodyBytes = 1 << 20

// sessionService — серверная привязка пользователя Telegram к корзине.
type sessionService interface {
	CartID(ctx context.Context, userID int64) (string, bool, error)
	SaveCartID(ctx context.Context, userID int64, cartID string) error
	ClearCartID(ctx context.Context, userID int64) error
}

// initDataVerifier — проверка initData Mini App.
type initDataVerifier interface {
	Verify(raw string) (*telegram.InitData, error)
}

// Deps — зависимости хендлеров.
type Deps struct {
	Relay    ports.StorefrontRelay
	Carts    ports.CartDispatcher
	Catalog  ports.CatalogLoader
	Sessions sessionService
	Verifier initDataVerifier
	Log      ports.Logger
	Timeout  time.Duration // <= 0 — без собственного таймаута
}

type Handler struct {
	relay    ports.StorefrontRelay
	carts    ports.CartDispatcher
	catalog  ports.CatalogLoader
	sessions sessionService
	verifier initDataVerifier
	log      ports.Logger
	timeout  time.Duration
}

func NewHandler(d Deps) *Handler {
	return &Handler{
		relay:    d.Relay,
		carts:    d.Carts,
		catalog:  d.Catalog,
		sessions: d.Sessions,
		verifier: d.Verifier,
		log:      d.Log,
		timeout:  d.Timeout,
	}
}

// requestContext — контекст запроса с таймаутом хендлера.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// readBody — тело запроса с ограничением размера.
func readBody(c *gin.Context) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return nil, fmt.Errorf("body exceeds %d bytes", mbe.Limit)
		}
		return nil, fmt.Errorf("read body: %w", err)
	}
	return raw, nil
}
