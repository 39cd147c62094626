package rest

import (
	"net/http"

	"github.com/Gunvolt24/tma_shop/pkg/validate"
	"github.com/gin-gonic/gin"
)

// cart — POST /api/cart: {action, ...}. 200 с корзиной (null для неизвестной корзины на get).
func (h *Handler) cart(c *gin.Context) {
	raw, err := readBody(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd, err := validate.DecodeCartCommand(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	cart, err := h.carts.Dispatch(ctx, *cmd)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}
