package route

import (
	"github.com/gin-gonic/gin"
	"github.com/gordosalgados/gordo-salgados/internal/adapter/api/controller"
	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
	"github.com/gordosalgados/gordo-salgados/pkg/auth"
)

// SetupProductRoutes configura as rotas para o módulo de produtos
func SetupProductRoutes(router *gin.RouterGroup, productController *controller.ProductController) {
	productRouter := router.Group("/products")
	{
		productRouter.GET("", auth.RequireCapability(admin.CapProductsView), productController.List)
		productRouter.GET("/:id", auth.RequireCapability(admin.CapProductsView), productController.GetByID)

		productRouter.POST("", auth.RequireCapability(admin.CapProductsManage), productController.Create)
		productRouter.PUT("/:id", auth.RequireCapability(admin.CapProductsManage), productController.Update)
		productRouter.DELETE("/:id", auth.RequireCapability(admin.CapProductsManage), productController.Delete)
	}
}

// SetupDashboardRoutes configura a rota do resumo do painel
func SetupDashboardRoutes(router *gin.RouterGroup, dashboardController *controller.DashboardController) {
	router.GET("/dashboard", auth.RequireCapability(admin.CapDashboardView), dashboardController.Get)
}
