package dto

import (
	"time"

	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
)

// CreateAdminRequest representa os dados para criação de um administrador
type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"required,admin_role"`
	IsActive *bool  `json:"is_active"`
}

// UpdateAdminRequest representa uma atualização parcial; campos ausentes não mudam
type UpdateAdminRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8,max=72"`
	Role     *string `json:"role" binding:"omitempty,admin_role"`
	IsActive *bool   `json:"is_active"`
}

// AdminResponse representa a resposta com dados de um administrador
type AdminResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AdminListResponse representa a lista de administradores
type AdminListResponse struct {
	Data  []AdminResponse `json:"data"`
	Total int             `json:"total"`
}

// ToAdminResponse converte um administrador do domínio para DTO de resposta
func ToAdminResponse(a *admin.Admin) AdminResponse {
	return AdminResponse{
		ID:          a.ID,
		Email:       a.Email,
		Name:        a.Name,
		Role:        string(a.Role),
		IsActive:    a.IsActive,
		LastLoginAt: a.LastLoginAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToAdminListResponse converte uma lista de administradores do domínio para DTO de resposta
func ToAdminListResponse(admins []*admin.Admin) AdminListResponse {
	data := make([]AdminResponse, len(admins))
	for i, a := range admins {
		data[i] = ToAdminResponse(a)
	}

	return AdminListResponse{
		Data:  data,
		Total: len(data),
	}
}
