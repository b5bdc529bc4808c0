package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthResponse_OmitsPasswordHash(t *testing.T) {
	s := newTestService(t)

	hash, err := HashPassword("securePassword123!")
	require.NoError(t, err)
	a, err := admin.NewAdmin("admin@example.com", "Admin User", hash, admin.RoleSuperAdmin)
	require.NoError(t, err)

	resp, err := s.NewAuthResponse(a)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, PublicProfile{
		ID:    a.ID,
		Email: "admin@example.com",
		Name:  "Admin User",
		Role:  "super_admin",
	}, resp.Admin)

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), hash)
	assert.NotContains(t, string(raw), "password")

	claims, ok := s.VerifySession(resp.Token)
	require.True(t, ok)
	assert.Equal(t, a.ID, claims.UserID)
}

func TestNewErrorResponse(t *testing.T) {
	assert.Equal(t, ErrorResponse{Error: "Credenciais inválidas", StatusCode: 401}, NewErrorResponse("Credenciais inválidas"))
	assert.Equal(t, ErrorResponse{Error: "x", StatusCode: 500}, NewErrorResponseWithStatus("x", 500))

	raw, err := json.Marshal(NewErrorResponse("x"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"x","statusCode":401}`, string(raw))
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"bearer abc", "", false},
		{"abc", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		token, ok := ExtractBearerToken(tc.header)
		assert.Equal(t, tc.ok, ok, tc.header)
		assert.Equal(t, tc.token, token, tc.header)
	}
}

func TestSessionCookie(t *testing.T) {
	r := gin.New()
	r.GET("/set", func(c *gin.Context) {
		SetSessionCookie(c, "tok", 7*24*time.Hour, true)
	})
	r.GET("/clear", func(c *gin.Context) {
		ClearSessionCookie(c, false)
	})
	r.GET("/read", func(c *gin.Context) {
		token, ok := SessionToken(c)
		c.JSON(http.StatusOK, gin.H{"token": token, "ok": ok})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))
	header := w.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(header, SessionCookieName+"=tok"))
	assert.Contains(t, header, "Path=/")
	assert.Contains(t, header, "Max-Age=604800")
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "Secure")
	assert.Contains(t, header, "SameSite=Strict")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clear", nil))
	header = w.Header().Get("Set-Cookie")
	assert.Contains(t, header, "Max-Age=0")
	assert.NotContains(t, header, "Secure")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/read", nil))
	assert.JSONEq(t, `{"token":"","ok":false}`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "abc"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.JSONEq(t, `{"token":"abc","ok":true}`, w.Body.String())
}
