package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/gordosalgados/gordo-salgados/pkg/logger"
)

// Recovery captura panics dos handlers e responde 500 sem expor detalhes
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic ao processar requisição",
					"panic", fmt.Sprint(r),
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()))

				// Mesmo formato de erro dos controllers
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"code":    http.StatusInternalServerError,
					"message": "Erro interno do servidor",
				})
			}
		}()

		c.Next()
	}
}
