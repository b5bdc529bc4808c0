package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gordosalgados/gordo-salgados/pkg/logger"
)

// RequestLogger registra cada requisição HTTP com status e latência
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("requisição concluída", fields...)
		case status >= 400:
			log.Warn("requisição concluída", fields...)
		default:
			log.Info("requisição concluída", fields...)
		}
	}
}
