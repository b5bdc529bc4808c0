package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gordosalgados/gordo-salgados/internal/adapter/api/dto"
	"github.com/gordosalgados/gordo-salgados/internal/adapter/repository"
	"github.com/gordosalgados/gordo-salgados/internal/domain/product"
	"github.com/gordosalgados/gordo-salgados/pkg/logger"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	productRepository product.Repository
	logger            logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepository product.Repository, log logger.Logger) *ProductController {
	return &ProductController{
		productRepository: productRepository,
		logger:            log,
	}
}

// List lista os produtos
// @Summary Lista os produtos
// @Tags products
// @Produce json
// @Param status query string false "active ou inactive"
// @Param category query string false "Categoria"
// @Success 200 {object} dto.ProductListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/products [get]
func (c *ProductController) List(ctx *gin.Context) {
	var query dto.ProductListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, "Filtro inválido", dto.ValidationMessage(err))
		return
	}

	products, err := c.productRepository.List(ctx.Request.Context(), product.Filter{
		Status:   product.Status(query.Status),
		Category: query.Category,
	})
	if err != nil {
		internalError(ctx, c.logger, "Erro ao listar produtos", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products))
}

// GetByID busca um produto pelo ID
// @Summary Busca um produto pelo ID
// @Tags products
// @Produce json
// @Param id path int true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/products/{id} [get]
func (c *ProductController) GetByID(ctx *gin.Context) {
	p, ok := c.find(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Create cria um novo produto
// @Summary Cria um novo produto
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var request dto.ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "Requisição inválida", dto.ValidationMessage(err))
		return
	}

	p, err := product.NewProduct(request.Name, request.Category, request.Price, product.Status(request.Status))
	if err != nil {
		badRequest(ctx, "Dados inválidos", err.Error())
		return
	}

	if err := c.productRepository.Create(ctx.Request.Context(), p); err != nil {
		internalError(ctx, c.logger, "Erro ao criar produto", err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// Update atualiza um produto
// @Summary Atualiza um produto
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var request dto.ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "Requisição inválida", dto.ValidationMessage(err))
		return
	}

	p, ok := c.find(ctx)
	if !ok {
		return
	}

	// Sem status no corpo o produto mantém o atual
	status := p.Status
	if request.Status != "" {
		status = product.Status(request.Status)
	}

	if err := p.Update(request.Name, request.Category, request.Price, status); err != nil {
		badRequest(ctx, "Dados inválidos", err.Error())
		return
	}

	if err := c.productRepository.Update(ctx.Request.Context(), p); err != nil {
		c.writeRepositoryError(ctx, err, "Erro ao atualizar produto")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Delete remove um produto
// @Summary Remove um produto
// @Tags products
// @Param id path int true "ID do produto"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	id, ok := parseProductID(ctx)
	if !ok {
		return
	}

	if err := c.productRepository.Delete(ctx.Request.Context(), id); err != nil {
		c.writeRepositoryError(ctx, err, "Erro ao excluir produto")
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *ProductController) find(ctx *gin.Context) (*product.Product, bool) {
	id, ok := parseProductID(ctx)
	if !ok {
		return nil, false
	}

	p, err := c.productRepository.FindByID(ctx.Request.Context(), id)
	if err != nil {
		c.writeRepositoryError(ctx, err, "Erro ao buscar produto")
		return nil, false
	}
	return p, true
}

func (c *ProductController) writeRepositoryError(ctx *gin.Context, err error, message string) {
	if errors.Is(err, repository.ErrProductNotFound) {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Produto não encontrado", ""))
		return
	}
	internalError(ctx, c.logger, message, err)
}

func parseProductID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(ctx, "ID inválido", "o ID do produto deve ser um número positivo")
		return 0, false
	}
	return id, true
}
