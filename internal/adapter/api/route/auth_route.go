package route

import (
	"github.com/gin-gonic/gin"
	"github.com/gordosalgados/gordo-salgados/internal/adapter/api/controller"
)

// SetupAuthRoutes configura as rotas para autenticação
func SetupAuthRoutes(router *gin.RouterGroup, authController *controller.AuthController, session gin.HandlerFunc) {
	authRouter := router.Group("/auth")
	{
		// Login e verificação não exigem sessão
		authRouter.POST("/login", authController.Login)
		authRouter.GET("/verify", authController.Verify)
		authRouter.POST("/logout", authController.Logout)

		// Dados do administrador logado
		authRouter.GET("/me", session, authController.Me)
	}
}
