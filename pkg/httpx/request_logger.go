package httpx

import (
	"net/http"
	"time"

	"github.com/Gunvolt24/tma_shop/internal/ports"
	"github.com/Gunvolt24/tma_shop/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// RequestLogger — строка лога на запрос. /metrics и /ping не логируются;
// 5xx пишутся как предупреждение.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		switch path {
		case "/metrics", "/ping":
			return
		case "":
			path = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		tr, _ := ctxmeta.TraceIDFromContext(ctx)
		status := c.Writer.Status()

		logf := log.Infof
		if status >= http.StatusInternalServerError {
			logf = log.Warnf
		}
		// request_id и пользователь Telegram добавляет сам логгер из контекста.
		logf(ctx, "http %s %s status=%d duration=%s size=%d ip=%s trace=%s",
			c.Request.Method, path, status, time.Since(start), c.Writer.Size(), c.ClientIP(), tr)
	}
}
