package admin

import (
	"context"
)

// Repository define a interface para operações de repositório de administradores
type Repository interface {
	// Create cria um novo administrador
	Create(ctx context.Context, a *Admin) error

	// FindByID busca um administrador pelo ID
	FindByID(ctx context.Context, id string) (*Admin, error)

	// FindByEmail busca um administrador pelo email
	FindByEmail(ctx context.Context, email string) (*Admin, error)

	// List lista todos os administradores, mais recentes primeiro
	List(ctx context.Context) ([]*Admin, error)

	// Update grava os dados cadastrais e o hash de senha de um administrador
	Update(ctx context.Context, a *Admin) error

	// UpdatePassword atualiza o hash de senha
	UpdatePassword(ctx context.Context, id, passwordHash string) error

	// UpdateLastLogin atualiza o timestamp de último login
	UpdateLastLogin(ctx context.Context, id string) error

	// Delete remove um administrador
	Delete(ctx context.Context, id string) error

	// Count conta os administradores cadastrados
	Count(ctx context.Context) (int, error)

	// CountActive conta os administradores ativos
	CountActive(ctx context.Context) (int, error)
}
