package httpx

import "github.com/gin-gonic/gin"

// FrameOptions — разрешает встраивание страниц в WebView Telegram.
func FrameOptions() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "ALLOWALL")
		c.Next()
	}
}

// NoCache — запрещает кэширование ответа браузером и прокси.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		SetNoCache(c)
		c.Next()
	}
}

// SetNoCache — те же заголовки для обработчиков вне цепочки маршрута (NoMethod, NoRoute).
func SetNoCache(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
}
