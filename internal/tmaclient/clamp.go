package tmaclient

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Границы количества в строке корзины.
const (
	MinQuantity = 1
	MaxQuantity = 999
)

// Clamp — количество из пользовательского ввода в [MinQuantity, MaxQuantity].
// Принимает числа и числовые строки; дробная часть отбрасывается;
// всё нечисловое, ноль и NaN дают MinQuantity. Clamp(Clamp(x)) == Clamp(x).
func Clamp(v any) int {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) {
		return MinQuantity
	}
	f = math.Trunc(f)
	if f == 0 {
		return MinQuantity
	}
	return int(max(MinQuantity, min(f, MaxQuantity)))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
