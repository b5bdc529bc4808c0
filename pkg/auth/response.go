package auth

import (
	"net/http"

	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
)

// PublicProfile é a projeção pública de uma conta.
// Contém apenas os campos listados aqui; o hash de senha não tem campo correspondente.
type PublicProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// AuthResponse é o corpo de resposta de um login bem-sucedido
type AuthResponse struct {
	Success bool          `json:"success"`
	Token   string        `json:"token"`
	Admin   PublicProfile `json:"admin"`
}

// ErrorResponse é o corpo de resposta de uma falha de autenticação
type ErrorResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode"`
}

// ToPublicProfile projeta a conta nos campos públicos
func ToPublicProfile(a *admin.Admin) PublicProfile {
	return PublicProfile{
		ID:    a.ID,
		Email: a.Email,
		Name:  a.Name,
		Role:  string(a.Role),
	}
}

// NewAuthResponse emite a sessão da conta e monta a resposta de sucesso
func (s *JWTService) NewAuthResponse(a *admin.Admin) (*AuthResponse, error) {
	token, err := s.IssueSession(a.ID, a.Email, string(a.Role))
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Success: true,
		Token:   token,
		Admin:   ToPublicProfile(a),
	}, nil
}

// NewErrorResponse cria uma resposta de falha com status 401
func NewErrorResponse(message string) ErrorResponse {
	return NewErrorResponseWithStatus(message, http.StatusUnauthorized)
}

// NewErrorResponseWithStatus cria uma resposta de falha com o status informado
func NewErrorResponseWithStatus(message string, statusCode int) ErrorResponse {
	return ErrorResponse{
		Success:    false,
		Error:      message,
		StatusCode: statusCode,
	}
}
