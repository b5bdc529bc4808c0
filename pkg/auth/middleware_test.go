package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
	"github.com/gordosalgados/gordo-salgados/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDenylist struct {
	revoked map[string]bool
	err     error
}

func (f *fakeDenylist) Revoke(_ context.Context, tokenID string, _ time.Time) error {
	if f.revoked == nil {
		f.revoked = map[string]bool{}
	}
	f.revoked[tokenID] = true
	return f.err
}

func (f *fakeDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return f.revoked[tokenID], f.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(s *JWTService, d *fakeDenylist, capability admin.Capability) *gin.Engine {
	r := gin.New()
	g := r.Group("/", SessionMiddleware(s, d, logger.Discard()))
	if capability != "" {
		g.Use(RequireCapability(capability))
	}
	g.GET("/protected", func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		fromCtx, _ := ClaimsFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID, "ctxUserId": fromCtx.UserID})
	})
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSessionMiddleware(t *testing.T) {
	s := newTestService(t)
	token, err := s.IssueSession("user-1", "a@b.com", string(admin.RoleEditor))
	require.NoError(t, err)

	t.Run("sem token", func(t *testing.T) {
		r := newProtectedRouter(s, &fakeDenylist{}, "")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		body := decodeError(t, w)
		assert.False(t, body.Success)
		assert.Equal(t, "Autenticação requerida", body.Error)
		assert.Equal(t, http.StatusUnauthorized, body.StatusCode)
	})

	t.Run("cookie válido", func(t *testing.T) {
		r := newProtectedRouter(s, &fakeDenylist{}, "")
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"userId":"user-1","ctxUserId":"user-1"}`, w.Body.String())
	})

	t.Run("bearer válido", func(t *testing.T) {
		r := newProtectedRouter(s, &fakeDenylist{}, "")
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("token inválido", func(t *testing.T) {
		r := newProtectedRouter(s, &fakeDenylist{}, "")
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "invalid.token.here"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Token inválido ou expirado", decodeError(t, w).Error)
	})

	t.Run("token revogado", func(t *testing.T) {
		claims, ok := s.VerifySession(token)
		require.True(t, ok)
		d := &fakeDenylist{revoked: map[string]bool{claims.ID: true}}

		r := newProtectedRouter(s, d, "")
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("falha na denylist", func(t *testing.T) {
		r := newProtectedRouter(s, &fakeDenylist{err: errors.New("redis fora")}, "")
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRequireCapability(t *testing.T) {
	s := newTestService(t)

	cases := []struct {
		role       admin.Role
		capability admin.Capability
		want       int
	}{
		{admin.RoleSuperAdmin, admin.CapAdminsManage, http.StatusOK},
		{admin.RoleEditor, admin.CapProductsManage, http.StatusOK},
		{admin.RoleEditor, admin.CapAdminsManage, http.StatusForbidden},
		{admin.RoleViewer, admin.CapProductsView, http.StatusOK},
		{admin.RoleViewer, admin.CapProductsManage, http.StatusForbidden},
		{admin.Role("unknown"), admin.CapDashboardView, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(string(tc.role)+"/"+string(tc.capability), func(t *testing.T) {
			token, err := s.IssueSession("user-1", "a@b.com", string(tc.role))
			require.NoError(t, err)

			r := newProtectedRouter(s, &fakeDenylist{}, tc.capability)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.want, w.Code)
			if tc.want == http.StatusForbidden {
				assert.Equal(t, "Acesso negado", decodeError(t, w).Error)
			}
		})
	}
}

func TestRequireCapability_WithoutSession(t *testing.T) {
	r := gin.New()
	r.GET("/x", RequireCapability(admin.CapDashboardView), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
