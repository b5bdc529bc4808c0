package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookieName é o nome do cookie que carrega o token de sessão
const SessionCookieName = "auth-token"

const bearerPrefix = "Bearer "

// SetSessionCookie grava o token em um cookie httpOnly, SameSite=Strict, válido para todo o site
func SetSessionCookie(c *gin.Context, token string, maxAge time.Duration, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, token, int(maxAge.Seconds()), "/", "", secure, true)
}

// ClearSessionCookie remove o cookie de sessão do navegador
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}

// SessionToken lê o token do cookie de sessão; ausência não é erro
func SessionToken(c *gin.Context) (string, bool) {
	token, err := c.Cookie(SessionCookieName)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

// ExtractBearerToken extrai o token de um cabeçalho "Bearer <token>".
// Qualquer outro esquema, ou cabeçalho vazio, resulta em ausência.
func ExtractBearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := header[len(bearerPrefix):]
	if token == "" {
		return "", false
	}
	return token, true
}
