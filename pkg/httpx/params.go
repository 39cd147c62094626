package httpx

import (
	"cmp"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Clamp — ограничение значения v диапазоном [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// Window — окно выдачи списка (?limit=&offset=).
type Window struct {
	Limit  int
	Offset int
}

// Apply — срез [offset, offset+limit) с учётом длины; Limit <= 0 — без ограничения.
func (w Window) Apply(n int) (from, to int) {
	from = Clamp(w.Offset, 0, n)
	to = n
	if w.Limit > 0 {
		to = Clamp(from+w.Limit, from, n)
	}
	return from, to
}

// ParseWindow — читает limit/offset из query. Без limit выдача не ограничена,
// с limit — он зажат в [1, maxLimit]. Отрицательный или нечисловой offset игнорируется.
func ParseWindow(c *gin.Context, maxLimit int) Window {
	var w Window
	if raw, ok := c.GetQuery("limit"); ok {
		if v, err := strconv.Atoi(raw); err == nil {
			w.Limit = Clamp(v, 1, maxLimit)
		}
	}
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil && v >= 0 {
		w.Offset = v
	}
	return w
}
