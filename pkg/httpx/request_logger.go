package httpx

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/dogbreeds/internal/ports"
)

// RequestLogger — middleware для логирования HTTP-запросов.
// request_id/trace_id/span_id добавляет сам логгер из контекста.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// не логируем /metrics, /ping
		switch c.FullPath() {
		case "/metrics", "/ping":
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		status := c.Writer.Status()
		args := []any{
			c.Request.Method, path, c.Request.URL.Path, status,
			c.ClientIP(), time.Since(start), c.Writer.Size(),
		}
		const format = "request method=%s route=%s path=%s status=%d ip=%s duration=%s size=%d"

		if status >= 500 {
			log.Errorf(c.Request.Context(), format, args...)
			return
		}
		log.Infof(c.Request.Context(), format, args...)
	}
}
