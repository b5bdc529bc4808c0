package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gordosalgados/gordo-salgados/internal/adapter/api/dto"
	"github.com/gordosalgados/gordo-salgados/internal/config"
	"github.com/gordosalgados/gordo-salgados/internal/domain/product"
	"github.com/gordosalgados/gordo-salgados/internal/domain/testimonial"
	"github.com/gordosalgados/gordo-salgados/pkg/logger"
)

// MenuController gerencia as rotas públicas do site
type MenuController struct {
	productRepository product.Repository
	business          config.BusinessConfig
	version           string
	logger            logger.Logger
}

// NewMenuController cria uma nova instância de MenuController
func NewMenuController(productRepository product.Repository, business config.BusinessConfig, version string, log logger.Logger) *MenuController {
	return &MenuController{
		productRepository: productRepository,
		business:          business,
		version:           version,
		logger:            log,
	}
}

// Menu retorna o cardápio público
// @Summary Cardápio público
// @Description Produtos ativos agrupados por categoria, depoimentos de clientes e os dados de contato da loja
// @Tags public
// @Produce json
// @Success 200 {object} dto.MenuResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /menu [get]
func (c *MenuController) Menu(ctx *gin.Context) {
	products, err := c.productRepository.List(ctx.Request.Context(), product.Filter{Status: product.StatusActive})
	if err != nil {
		internalError(ctx, c.logger, "Erro ao carregar cardápio", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMenuResponse(c.business, products, testimonial.All()))
}

// Health verifica se a API está no ar
// @Summary Health check
// @Tags public
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *MenuController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Version: c.version,
	})
}
