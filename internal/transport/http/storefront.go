package rest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type storefrontRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// storefront — POST /api/storefront: {query, variables} в Shopify, ответ без изменений.
func (h *Handler) storefront(c *gin.Context) {
	raw, err := readBody(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req storefrontRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	body, err := h.relay.Relay(ctx, req.Query, req.Variables)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
