package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
	"github.com/gordosalgados/gordo-salgados/pkg/logger"
	"github.com/gordosalgados/gordo-salgados/pkg/revocation"
)

// SessionMiddleware exige uma sessão válida.
// O token vem do cookie de sessão ou, na falta dele, do cabeçalho Authorization.
func SessionMiddleware(jwtService *JWTService, denylist revocation.Denylist, log logger.Logger) gin.HandlerFunc {
	if denylist == nil {
		denylist = revocation.Noop{}
	}

	return func(c *gin.Context) {
		token, ok := SessionToken(c)
		if !ok {
			token, ok = ExtractBearerToken(c.GetHeader("Authorization"))
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse("Autenticação requerida"))
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			log.Debug("sessão rejeitada", "reason", err.Error(), "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse("Token inválido ou expirado"))
			return
		}

		revoked, err := denylist.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			log.Error("erro ao consultar revogação de token", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				NewErrorResponseWithStatus("Erro interno do servidor", http.StatusInternalServerError))
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse("Token inválido ou expirado"))
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// RequireCapability cria um middleware que exige a capacidade no papel da sessão
func RequireCapability(capability admin.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse("Autenticação requerida"))
			return
		}

		if !admin.Can(admin.Role(claims.Role), capability) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				NewErrorResponseWithStatus("Acesso negado", http.StatusForbidden))
			return
		}

		c.Next()
	}
}
