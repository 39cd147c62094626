package rest

import (
	"net/http"
	"strconv"

	"github.com/Gunvolt24/tma_shop/pkg/httpx"
	"github.com/gin-gonic/gin"
)

const maxProductsLimit = 1000

// products — GET /api/products: весь каталог; ?limit=&offset= режут уже загруженный список.
// Полное число товаров — в заголовке X-Total-Count.
func (h *Handler) products(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	list, err := h.catalog.LoadAll(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}

	from, to := httpx.ParseWindow(c, maxProductsLimit).Apply(len(list))
	c.Header("X-Total-Count", strconv.Itoa(len(list)))
	c.JSON(http.StatusOK, list[from:to])
}
