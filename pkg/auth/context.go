package auth

import (
	"context"

	"github.com/gin-gonic/gin"
)

type contextKey struct{}

const ginClaimsKey = "session_claims"

// WithClaims adiciona as claims da sessão ao contexto
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, claims)
}

// ClaimsFromContext obtém as claims da sessão do contexto
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(contextKey{}).(*Claims)
	return claims, ok && claims != nil
}

// CurrentClaims obtém as claims gravadas pelo SessionMiddleware
func CurrentClaims(c *gin.Context) (*Claims, bool) {
	v, exists := c.Get(ginClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok && claims != nil
}

func setClaims(c *gin.Context, claims *Claims) {
	c.Set(ginClaimsKey, claims)
	c.Request = c.Request.WithContext(WithClaims(c.Request.Context(), claims))
}
