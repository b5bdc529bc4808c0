package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gordosalgados/gordo-salgados/internal/adapter/api/dto"
	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
	"github.com/gordosalgados/gordo-salgados/internal/domain/product"
	"github.com/gordosalgados/gordo-salgados/pkg/auth"
	"github.com/gordosalgados/gordo-salgados/pkg/logger"
)

const recentProductsLimit = 5

// DashboardController gerencia o resumo do painel administrativo
type DashboardController struct {
	productRepository product.Repository
	adminRepository   admin.Repository
	logger            logger.Logger
}

// NewDashboardController cria uma nova instância de DashboardController
func NewDashboardController(productRepository product.Repository, adminRepository admin.Repository, log logger.Logger) *DashboardController {
	return &DashboardController{
		productRepository: productRepository,
		adminRepository:   adminRepository,
		logger:            log,
	}
}

// Get retorna os números do painel
// @Summary Resumo do painel
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} auth.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/dashboard [get]
func (c *DashboardController) Get(ctx *gin.Context) {
	reqCtx := ctx.Request.Context()

	stats, err := c.productRepository.Stats(reqCtx)
	if err != nil {
		internalError(ctx, c.logger, "Erro ao calcular estatísticas", err)
		return
	}

	totalAdmins, err := c.adminRepository.Count(reqCtx)
	if err != nil {
		internalError(ctx, c.logger, "Erro ao contar administradores", err)
		return
	}

	activeAdmins, err := c.adminRepository.CountActive(reqCtx)
	if err != nil {
		internalError(ctx, c.logger, "Erro ao contar administradores", err)
		return
	}

	recent, err := c.productRepository.List(reqCtx, product.Filter{Limit: recentProductsLimit})
	if err != nil {
		internalError(ctx, c.logger, "Erro ao listar produtos recentes", err)
		return
	}

	var role admin.Role
	if claims, ok := auth.CurrentClaims(ctx); ok {
		role = admin.Role(claims.Role)
	}

	ctx.JSON(http.StatusOK, dto.NewDashboardResponse(stats, totalAdmins, activeAdmins, recent, role))
}
