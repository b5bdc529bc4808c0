package dto

import (
	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
	"github.com/gordosalgados/gordo-salgados/pkg/auth"
)

// LoginRequest representa os dados para login.
// A presença dos campos é conferida pelo controller para responder com a mensagem única de entrada inválida.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUser representa as claims da sessão devolvidas pela verificação
type SessionUser struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// VerifyResponse representa a resposta de verificação de sessão
type VerifyResponse struct {
	Authenticated bool         `json:"authenticated"`
	Message       string       `json:"message,omitempty"`
	User          *SessionUser `json:"user,omitempty"`
}

// MeResponse representa o perfil da sessão atual com as ações liberadas para o papel
type MeResponse struct {
	Admin        auth.PublicProfile `json:"admin"`
	Capabilities []admin.Capability `json:"capabilities"`
	Menu         []admin.MenuItem   `json:"menu"`
}

// ToSessionUser converte as claims da sessão para DTO
func ToSessionUser(c *auth.Claims) *SessionUser {
	u := &SessionUser{
		UserID: c.UserID,
		Email:  c.Email,
		Role:   c.Role,
	}
	if c.IssuedAt != nil {
		u.IssuedAt = c.IssuedAt.Unix()
	}
	if c.ExpiresAt != nil {
		u.ExpiresAt = c.ExpiresAt.Unix()
	}
	return u
}

// NewVerifyFailure cria a resposta de sessão não autenticada
func NewVerifyFailure(message string) VerifyResponse {
	return VerifyResponse{
		Authenticated: false,
		Message:       message,
	}
}

// ToMeResponse monta o perfil público com as capacidades do papel
func ToMeResponse(a *admin.Admin) MeResponse {
	return MeResponse{
		Admin:        auth.ToPublicProfile(a),
		Capabilities: admin.VisibleActions(a.Role),
		Menu:         admin.MenuFor(a.Role),
	}
}
