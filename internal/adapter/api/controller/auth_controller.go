package controller

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gordosalgados/gordo-salgados/internal/adapter/api/dto"
	"github.com/gordosalgados/gordo-salgados/internal/adapter/repository"
	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
	"github.com/gordosalgados/gordo-salgados/pkg/auth"
	"github.com/gordosalgados/gordo-salgados/pkg/logger"
	"github.com/gordosalgados/gordo-salgados/pkg/revocation"
)

// Mensagens de autenticação exibidas ao cliente
const (
	msgMissingCredentials = "Email e senha são obrigatórios"
	msgInvalidCredentials = "Credenciais inválidas"
	msgDisabledAccount    = "Conta desativada"
	msgInternalError      = "Erro interno do servidor"
	msgTokenNotFound      = "Token não encontrado"
	msgInvalidToken       = "Token inválido ou expirado"
)

const lastLoginTimeout = 5 * time.Second

// AuthController gerencia as requisições relacionadas à autenticação
type AuthController struct {
	adminRepository admin.Repository
	jwtService      *auth.JWTService
	denylist        revocation.Denylist
	logger          logger.Logger
	secureCookies   bool

	pending sync.WaitGroup
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(
	adminRepository admin.Repository,
	jwtService *auth.JWTService,
	denylist revocation.Denylist,
	log logger.Logger,
	secureCookies bool,
) *AuthController {
	if denylist == nil {
		denylist = revocation.Noop{}
	}

	return &AuthController{
		adminRepository: adminRepository,
		jwtService:      jwtService,
		denylist:        denylist,
		logger:          log,
		secureCookies:   secureCookies,
	}
}

// Login autentica um administrador e grava o cookie de sessão
// @Summary Autentica um administrador
// @Description Verifica as credenciais e devolve o token no corpo e no cookie auth-token
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credenciais de login"
// @Success 200 {object} auth.AuthResponse
// @Failure 400 {object} auth.ErrorResponse
// @Failure 401 {object} auth.ErrorResponse
// @Failure 500 {object} auth.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil ||
		strings.TrimSpace(request.Email) == "" || request.Password == "" {
		ctx.JSON(http.StatusBadRequest, auth.NewErrorResponseWithStatus(msgMissingCredentials, http.StatusBadRequest))
		return
	}

	// Buscar o administrador pelo email
	a, err := c.adminRepository.FindByEmail(ctx.Request.Context(), request.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			ctx.JSON(http.StatusUnauthorized, auth.NewErrorResponse(msgInvalidCredentials))
			return
		}
		c.logger.Error("erro ao buscar administrador no login", "error", err)
		ctx.JSON(http.StatusInternalServerError, auth.NewErrorResponseWithStatus(msgInternalError, http.StatusInternalServerError))
		return
	}

	// Contas desativadas são recusadas antes da verificação de senha
	if !a.IsActive {
		ctx.JSON(http.StatusUnauthorized, auth.NewErrorResponse(msgDisabledAccount))
		return
	}

	if !auth.CheckPassword(request.Password, a.PasswordHash) {
		ctx.JSON(http.StatusUnauthorized, auth.NewErrorResponse(msgInvalidCredentials))
		return
	}

	response, err := c.jwtService.NewAuthResponse(a)
	if err != nil {
		c.logger.Error("erro ao emitir sessão", "admin_id", a.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, auth.NewErrorResponseWithStatus(msgInternalError, http.StatusInternalServerError))
		return
	}

	c.recordLastLogin(ctx.Request.Context(), a.ID)

	auth.SetSessionCookie(ctx, response.Token, c.jwtService.Validity(), c.secureCookies)
	c.logger.Info("login realizado", "admin_id", a.ID, "role", string(a.Role))
	ctx.JSON(http.StatusOK, response)
}

// Verify informa se o cookie de sessão contém uma sessão válida
// @Summary Verifica a sessão atual
// @Description Lê apenas o cookie auth-token; não consulta o banco
// @Tags auth
// @Produce json
// @Success 200 {object} dto.VerifyResponse
// @Failure 401 {object} dto.VerifyResponse
// @Failure 500 {object} dto.VerifyResponse
// @Router /auth/verify [get]
func (c *AuthController) Verify(ctx *gin.Context) {
	token, ok := auth.SessionToken(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewVerifyFailure(msgTokenNotFound))
		return
	}

	claims, ok := c.jwtService.VerifySession(token)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewVerifyFailure(msgInvalidToken))
		return
	}

	revoked, err := c.denylist.IsRevoked(ctx.Request.Context(), claims.ID)
	if err != nil {
		c.logger.Error("erro ao consultar revogação de token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewVerifyFailure(msgInternalError))
		return
	}
	if revoked {
		ctx.JSON(http.StatusUnauthorized, dto.NewVerifyFailure(msgInvalidToken))
		return
	}

	ctx.JSON(http.StatusOK, dto.VerifyResponse{
		Authenticated: true,
		User:          dto.ToSessionUser(claims),
	})
}

// Logout encerra a sessão do navegador
// @Summary Encerra a sessão
// @Description Remove o cookie auth-token e, com Redis configurado, revoga o token até a expiração
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if token, ok := auth.SessionToken(ctx); ok {
		if claims, ok := c.jwtService.VerifySession(token); ok {
			if err := c.denylist.Revoke(ctx.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
				c.logger.Warn("falha ao revogar token no logout", "admin_id", claims.UserID, "error", err)
			}
		}
	}

	auth.ClearSessionCookie(ctx, c.secureCookies)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Logout realizado com sucesso", nil))
}

// Me retorna o perfil da sessão atual
// @Summary Retorna o administrador autenticado
// @Description Retorna o perfil público, as capacidades e o menu do papel
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} auth.ErrorResponse
// @Failure 500 {object} auth.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims, ok := auth.CurrentClaims(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, auth.NewErrorResponse("Autenticação requerida"))
		return
	}

	a, err := c.adminRepository.FindByID(ctx.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			ctx.JSON(http.StatusUnauthorized, auth.NewErrorResponse("Conta não encontrada"))
			return
		}
		c.logger.Error("erro ao buscar administrador da sessão", "admin_id", claims.UserID, "error", err)
		ctx.JSON(http.StatusInternalServerError, auth.NewErrorResponseWithStatus(msgInternalError, http.StatusInternalServerError))
		return
	}

	if !a.IsActive {
		ctx.JSON(http.StatusUnauthorized, auth.NewErrorResponse(msgDisabledAccount))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMeResponse(a))
}

// Wait aguarda as atualizações de último login em andamento
func (c *AuthController) Wait() {
	c.pending.Wait()
}

// recordLastLogin atualiza o último login em segundo plano.
// A resposta do login não depende do resultado; falhas apenas vão para o log.
func (c *AuthController) recordLastLogin(reqCtx context.Context, adminID string) {
	c.pending.Add(1)
	go func() {
		defer c.pending.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(reqCtx), lastLoginTimeout)
		defer cancel()

		if err := c.adminRepository.UpdateLastLogin(ctx, adminID); err != nil {
			c.logger.Warn("falha ao registrar último login", "admin_id", adminID, "error", err)
		}
	}()
}
