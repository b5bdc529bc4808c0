package route

import (
	"github.com/gin-gonic/gin"
	"github.com/gordosalgados/gordo-salgados/internal/adapter/api/controller"
)

// Controllers agrupa os controllers expostos pela API
type Controllers struct {
	Auth      *controller.AuthController
	Admin     *controller.AdminController
	Product   *controller.ProductController
	Dashboard *controller.DashboardController
	Menu      *controller.MenuController
}

// SetupRoutes configura todas as rotas da API sob basePath.
// session valida o cookie de sessão nas rotas do painel.
func SetupRoutes(r *gin.Engine, basePath string, controllers Controllers, session gin.HandlerFunc) {
	api := r.Group(basePath)

	// Rotas públicas
	api.GET("/health", controllers.Menu.Health)
	api.GET("/menu", controllers.Menu.Menu)

	SetupAuthRoutes(api, controllers.Auth, session)

	// Painel administrativo
	adminRouter := api.Group("/admin", session)
	SetupDashboardRoutes(adminRouter, controllers.Dashboard)
	SetupProductRoutes(adminRouter, controllers.Product)
	SetupAdminRoutes(adminRouter, controllers.Admin)
}
