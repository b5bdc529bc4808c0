package admin

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("nome não pode ser vazio")
	ErrEmptyEmail       = errors.New("email não pode ser vazio")
	ErrInvalidEmail     = errors.New("email inválido")
	ErrInvalidRole      = errors.New("papel inválido")
	ErrEmptyPassword    = errors.New("hash de senha não pode ser vazio")
	ErrSelfModification = errors.New("não é permitido excluir ou desativar a própria conta")
)

// Role representa o papel do administrador
type Role string

// Constantes para Role
const (
	RoleSuperAdmin Role = "super_admin" // Acesso total, inclusive gestão de admins
	RoleEditor     Role = "editor"      // Gerencia produtos
	RoleViewer     Role = "viewer"      // Somente leitura
)

// Roles lista os papéis válidos
var Roles = []Role{RoleSuperAdmin, RoleEditor, RoleViewer}

// Valid verifica se o papel pertence à enumeração fechada
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// Admin representa uma conta administrativa do painel
type Admin struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"` // nunca serializado
	Role         Role       `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// NewAdmin cria um novo administrador ativo.
// passwordHash deve vir de auth.HashPassword.
func NewAdmin(email, name, passwordHash string, role Role) (*Admin, error) {
	email = NormalizeEmail(email)
	name = strings.TrimSpace(name)

	if err := validate(email, name, role); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, ErrEmptyPassword
	}

	now := time.Now().UTC()
	return &Admin{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Update altera os dados cadastrais do administrador
func (a *Admin) Update(email, name string, role Role, isActive bool) error {
	email = NormalizeEmail(email)
	name = strings.TrimSpace(name)

	if err := validate(email, name, role); err != nil {
		return err
	}

	a.Email = email
	a.Name = name
	a.Role = role
	a.IsActive = isActive
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// SetPasswordHash troca o hash de senha
func (a *Admin) SetPasswordHash(hash string) error {
	if hash == "" {
		return ErrEmptyPassword
	}
	a.PasswordHash = hash
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// IsSuperAdmin verifica se o administrador tem acesso total
func (a *Admin) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

// NormalizeEmail padroniza o email usado como chave de login
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validate(email, name string, role Role) error {
	if name == "" {
		return ErrEmptyName
	}
	if email == "" {
		return ErrEmptyEmail
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	if !role.Valid() {
		return ErrInvalidRole
	}
	return nil
}
