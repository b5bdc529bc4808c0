package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gordosalgados/gordo-salgados/internal/adapter/api/dto"
	"github.com/gordosalgados/gordo-salgados/internal/adapter/repository"
	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
	"github.com/gordosalgados/gordo-salgados/pkg/auth"
	"github.com/gordosalgados/gordo-salgados/pkg/logger"
)

// AdminController gerencia as requisições relacionadas a administradores
type AdminController struct {
	adminRepository admin.Repository
	logger          logger.Logger
}

// NewAdminController cria uma nova instância de AdminController
func NewAdminController(adminRepository admin.Repository, log logger.Logger) *AdminController {
	return &AdminController{
		adminRepository: adminRepository,
		logger:          log,
	}
}

// List lista os administradores
// @Summary Lista os administradores
// @Tags admins
// @Produce json
// @Success 200 {object} dto.AdminListResponse
// @Failure 401 {object} auth.ErrorResponse
// @Failure 403 {object} auth.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/admins [get]
func (c *AdminController) List(ctx *gin.Context) {
	admins, err := c.adminRepository.List(ctx.Request.Context())
	if err != nil {
		internalError(ctx, c.logger, "Erro ao listar administradores", err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAdminListResponse(admins))
}

// GetByID busca um administrador pelo ID
// @Summary Busca um administrador pelo ID
// @Tags admins
// @Produce json
// @Param id path string true "ID do administrador"
// @Success 200 {object} dto.AdminResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/admins/{id} [get]
func (c *AdminController) GetByID(ctx *gin.Context) {
	a, ok := c.find(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAdminResponse(a))
}

// Create cria um novo administrador
// @Summary Cria um novo administrador
// @Tags admins
// @Accept json
// @Produce json
// @Param admin body dto.CreateAdminRequest true "Dados do administrador"
// @Success 201 {object} dto.AdminResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/admins [post]
func (c *AdminController) Create(ctx *gin.Context) {
	var request dto.CreateAdminRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "Requisição inválida", dto.ValidationMessage(err))
		return
	}

	hash, ok := c.hashPassword(ctx, request.Password)
	if !ok {
		return
	}

	a, err := admin.NewAdmin(request.Email, request.Name, hash, admin.Role(request.Role))
	if err != nil {
		badRequest(ctx, "Dados inválidos", err.Error())
		return
	}
	if request.IsActive != nil {
		a.IsActive = *request.IsActive
	}

	if err := c.adminRepository.Create(ctx.Request.Context(), a); err != nil {
		if errors.Is(err, repository.ErrAdminDuplicateEmail) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Administrador com mesmo email já existe", ""))
			return
		}
		internalError(ctx, c.logger, "Erro ao criar administrador", err)
		return
	}

	c.logger.Info("administrador criado", "admin_id", a.ID, "role", string(a.Role))
	ctx.JSON(http.StatusCreated, dto.ToAdminResponse(a))
}

// Update atualiza um administrador; apenas os campos enviados mudam
// @Summary Atualiza um administrador
// @Tags admins
// @Accept json
// @Produce json
// @Param id path string true "ID do administrador"
// @Param admin body dto.UpdateAdminRequest true "Campos a alterar"
// @Success 200 {object} dto.AdminResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/admins/{id} [put]
func (c *AdminController) Update(ctx *gin.Context) {
	var request dto.UpdateAdminRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "Requisição inválida", dto.ValidationMessage(err))
		return
	}

	a, ok := c.find(ctx)
	if !ok {
		return
	}

	email, name, role, isActive := a.Email, a.Name, a.Role, a.IsActive
	if request.Email != nil {
		email = *request.Email
	}
	if request.Name != nil {
		name = *request.Name
	}
	if request.Role != nil {
		role = admin.Role(*request.Role)
	}
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	if !isActive && c.isSelf(ctx, a.ID) {
		badRequest(ctx, "Operação não permitida", admin.ErrSelfModification.Error())
		return
	}

	if err := a.Update(email, name, role, isActive); err != nil {
		badRequest(ctx, "Dados inválidos", err.Error())
		return
	}

	// Senha e perfil são gravados no mesmo UPDATE
	if request.Password != nil {
		hash, ok := c.hashPassword(ctx, *request.Password)
		if !ok {
			return
		}
		if err := a.SetPasswordHash(hash); err != nil {
			badRequest(ctx, "Dados inválidos", err.Error())
			return
		}
	}

	if err := c.adminRepository.Update(ctx.Request.Context(), a); err != nil {
		c.writeRepositoryError(ctx, err, "Erro ao atualizar administrador")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAdminResponse(a))
}

// Delete remove um administrador
// @Summary Remove um administrador
// @Tags admins
// @Param id path string true "ID do administrador"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/admins/{id} [delete]
func (c *AdminController) Delete(ctx *gin.Context) {
	id, ok := adminID(ctx)
	if !ok {
		return
	}
	if c.isSelf(ctx, id) {
		badRequest(ctx, "Operação não permitida", admin.ErrSelfModification.Error())
		return
	}

	if err := c.adminRepository.Delete(ctx.Request.Context(), id); err != nil {
		c.writeRepositoryError(ctx, err, "Erro ao excluir administrador")
		return
	}

	c.logger.Info("administrador excluído", "admin_id", id)
	ctx.Status(http.StatusNoContent)
}

func (c *AdminController) find(ctx *gin.Context) (*admin.Admin, bool) {
	id, ok := adminID(ctx)
	if !ok {
		return nil, false
	}

	a, err := c.adminRepository.FindByID(ctx.Request.Context(), id)
	if err != nil {
		c.writeRepositoryError(ctx, err, "Erro ao buscar administrador")
		return nil, false
	}
	return a, true
}

func (c *AdminController) isSelf(ctx *gin.Context, id string) bool {
	claims, ok := auth.CurrentClaims(ctx)
	return ok && claims.UserID == id
}

func (c *AdminController) writeRepositoryError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, repository.ErrAdminNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Administrador não encontrado", ""))
	case errors.Is(err, repository.ErrAdminDuplicateEmail):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Administrador com mesmo email já existe", ""))
	default:
		internalError(ctx, c.logger, message, err)
	}
}

func (c *AdminController) hashPassword(ctx *gin.Context, password string) (string, bool) {
	hash, err := auth.HashPassword(password)
	switch {
	case err == nil:
		return hash, true
	case errors.Is(err, auth.ErrPasswordTooLong), errors.Is(err, auth.ErrEmptyPassword):
		badRequest(ctx, "Dados inválidos", err.Error())
	default:
		internalError(ctx, c.logger, "Erro ao processar senha", err)
	}
	return "", false
}

// adminID lê o ID da rota na forma canônica; um ID fora do formato UUID não existe no banco
func adminID(ctx *gin.Context) (string, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Administrador não encontrado", ""))
		return "", false
	}
	return id.String(), true
}
