package route

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gordosalgados/gordo-salgados/internal/adapter/api/controller"
	"github.com/gordosalgados/gordo-salgados/internal/config"
	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
	"github.com/gordosalgados/gordo-salgados/pkg/auth"
	"github.com/gordosalgados/gordo-salgados/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	log := logger.Discard()
	jwtService, err := auth.NewJWTService("route-test-secret", time.Hour)
	require.NoError(t, err)

	controllers := Controllers{
		Auth:      controller.NewAuthController(nil, jwtService, nil, log, false),
		Admin:     controller.NewAdminController(nil, log),
		Product:   controller.NewProductController(nil, log),
		Dashboard: controller.NewDashboardController(nil, nil, log),
		Menu:      controller.NewMenuController(nil, config.BusinessConfig{}, "test", log),
	}

	r := gin.New()
	SetupRoutes(r, "/api", controllers, auth.SessionMiddleware(jwtService, nil, log))
	return r, jwtService
}

func TestSetupRoutes_Registered(t *testing.T) {
	r, _ := newRouter(t)

	registered := map[string]bool{}
	for _, info := range r.Routes() {
		registered[info.Method+" "+info.Path] = true
	}

	for _, route := range []string{
		"GET /api/health",
		"GET /api/menu",
		"POST /api/auth/login",
		"GET /api/auth/verify",
		"POST /api/auth/logout",
		"GET /api/auth/me",
		"GET /api/admin/dashboard",
		"GET /api/admin/products",
		"POST /api/admin/products",
		"PUT /api/admin/products/:id",
		"DELETE /api/admin/products/:id",
		"GET /api/admin/admins",
		"POST /api/admin/admins",
		"PUT /api/admin/admins/:id",
		"DELETE /api/admin/admins/:id",
	} {
		assert.True(t, registered[route], route)
	}
}

func TestSetupRoutes_Health(t *testing.T) {
	r, _ := newRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","version":"test"}`, w.Body.String())
}

func TestSetupRoutes_AdminRequiresSession(t *testing.T) {
	r, _ := newRouter(t)

	for _, path := range []string{"/api/admin/dashboard", "/api/admin/products", "/api/admin/admins", "/api/auth/me"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestSetupRoutes_CapabilitiesPerRole(t *testing.T) {
	r, jwtService := newRouter(t)

	cases := []struct {
		role   admin.Role
		method string
		path   string
	}{
		{admin.RoleViewer, http.MethodPost, "/api/admin/products"},
		{admin.RoleViewer, http.MethodDelete, "/api/admin/products/1"},
		{admin.RoleViewer, http.MethodGet, "/api/admin/admins"},
		{admin.RoleEditor, http.MethodGet, "/api/admin/admins"},
		{admin.RoleEditor, http.MethodDelete, "/api/admin/admins/abc"},
	}
	for _, tc := range cases {
		token, err := jwtService.IssueSession("id-1", "x@gordosalgados.com", string(tc.role))
		require.NoError(t, err)

		req := httptest.NewRequest(tc.method, tc.path, nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s %s", tc.role, tc.method, tc.path)
	}
}
