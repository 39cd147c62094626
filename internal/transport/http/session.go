package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Gunvolt24/tma_shop/pkg/ctxmeta"
	"github.com/Gunvolt24/tma_shop/pkg/telegram"
	"github.com/gin-gonic/gin"
)

const initDataHeader = "X-Telegram-Init-Data"

type sessionCart struct {
	CartID string `json:"cartId"`
}

// telegramAuth — проверка initData; id пользователя кладётся в контекст запроса.
func (h *Handler) telegramAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := h.verifier.Verify(c.GetHeader(initDataHeader))
		switch {
		case errors.Is(err, telegram.ErrNoBotToken):
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "telegram auth is not configured"})
			return
		case err != nil:
			h.log.Warnf(c.Request.Context(), "telegram init data rejected: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid telegram init data"})
			return
		}

		ctx := ctxmeta.WithTelegramUserID(c.Request.Context(), data.User.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// getSessionCart — GET /api/session/cart: {cartId} или 404.
func (h *Handler) getSessionCart(c *gin.Context) {
	userID, _ := ctxmeta.TelegramUserIDFromContext(c.Request.Context())

	ctx, cancel := h.requestContext(c)
	defer cancel()

	id, ok, err := h.sessions.CartID(ctx, userID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart session not found"})
		return
	}
	c.JSON(http.StatusOK, sessionCart{CartID: id})
}

// putSessionCart — PUT /api/session/cart {cartId}.
func (h *Handler) putSessionCart(c *gin.Context) {
	userID, _ := ctxmeta.TelegramUserIDFromContext(c.Request.Context())

	raw, err := readBody(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var body sessionCart
	if err := json.Unmarshal(raw, &body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.sessions.SaveCartID(ctx, userID, body.CartID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteSessionCart — DELETE /api/session/cart.
func (h *Handler) deleteSessionCart(c *gin.Context) {
	userID, _ := ctxmeta.TelegramUserIDFromContext(c.Request.Context())

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.sessions.ClearCartID(ctx, userID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
