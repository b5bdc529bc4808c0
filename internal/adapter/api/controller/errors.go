package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gordosalgados/gordo-salgados/internal/adapter/api/dto"
	"github.com/gordosalgados/gordo-salgados/pkg/logger"
)

// badRequest responde 400 com o detalhe da validação
func badRequest(ctx *gin.Context, message, details string) {
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message, details))
}

// internalError registra o erro e responde 500 sem expor detalhes
func internalError(ctx *gin.Context, log logger.Logger, message string, err error) {
	log.Error(message, "error", err, "path", ctx.FullPath())
	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, message, ""))
}
