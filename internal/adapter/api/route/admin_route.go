package route

import (
	"github.com/gin-gonic/gin"
	"github.com/gordosalgados/gordo-salgados/internal/adapter/api/controller"
	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
	"github.com/gordosalgados/gordo-salgados/pkg/auth"
)

// SetupAdminRoutes configura as rotas de gestão de administradores
func SetupAdminRoutes(router *gin.RouterGroup, adminController *controller.AdminController) {
	adminRouter := router.Group("/admins")
	{
		adminRouter.GET("", auth.RequireCapability(admin.CapAdminsView), adminController.List)
		adminRouter.GET("/:id", auth.RequireCapability(admin.CapAdminsView), adminController.GetByID)

		// Apenas super_admin altera outros administradores
		adminRouter.POST("", auth.RequireCapability(admin.CapAdminsManage), adminController.Create)
		adminRouter.PUT("/:id", auth.RequireCapability(admin.CapAdminsManage), adminController.Update)
		adminRouter.DELETE("/:id", auth.RequireCapability(admin.CapAdminsManage), adminController.Delete)
	}
}
