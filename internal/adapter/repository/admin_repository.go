package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
	"github.com/jackc/pgx/v5"
)

// Erros específicos do repositório de administradores
var (
	ErrAdminNotFound       = errors.New("administrador não encontrado")
	ErrAdminDuplicateEmail = errors.New("administrador com mesmo email já existe")
)

const adminColumns = `id, email, name, password_hash, role, is_active, last_login_at, created_at, updated_at`

// AdminRepository implementa a interface admin.Repository usando PostgreSQL
type AdminRepository struct {
	db DBTX
}

// NewAdminRepository cria uma nova instância de AdminRepository
func NewAdminRepository(db DBTX) admin.Repository {
	return &AdminRepository{
		db: db,
	}
}

// Create implementa admin.Repository.Create
func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	query := `
		INSERT INTO admins (
			id, email, name, password_hash, role, is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := r.db.Exec(ctx, query,
		a.ID,
		a.Email,
		a.Name,
		a.PasswordHash,
		string(a.Role),
		a.IsActive,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAdminDuplicateEmail
		}
		return fmt.Errorf("falha ao inserir administrador: %w", err)
	}

	return nil
}

// FindByID implementa admin.Repository.FindByID
func (r *AdminRepository) FindByID(ctx context.Context, id string) (*admin.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`

	a, err := scanAdmin(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("falha ao buscar administrador: %w", err)
	}
	return a, nil
}

// FindByEmail implementa admin.Repository.FindByEmail
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE email = $1`

	a, err := scanAdmin(r.db.QueryRow(ctx, query, admin.NormalizeEmail(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("falha ao buscar administrador por email: %w", err)
	}
	return a, nil
}

// List implementa admin.Repository.List
func (r *AdminRepository) List(ctx context.Context) ([]*admin.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar administradores: %w", err)
	}
	defer rows.Close()

	admins := make([]*admin.Admin, 0)
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler administrador: %w", err)
		}
		admins = append(admins, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("falha ao iterar administradores: %w", err)
	}

	return admins, nil
}

// Update implementa admin.Repository.Update
func (r *AdminRepository) Update(ctx context.Context, a *admin.Admin) error {
	query := `
		UPDATE admins
		SET email = $2, name = $3, role = $4, is_active = $5, password_hash = $6, updated_at = $7
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		a.ID,
		a.Email,
		a.Name,
		string(a.Role),
		a.IsActive,
		a.PasswordHash,
		a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAdminDuplicateEmail
		}
		return fmt.Errorf("falha ao atualizar administrador: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAdminNotFound
	}
	return nil
}

// UpdatePassword implementa admin.Repository.UpdatePassword
func (r *AdminRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := `UPDATE admins SET password_hash = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, passwordHash, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("falha ao atualizar senha: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAdminNotFound
	}
	return nil
}

// UpdateLastLogin implementa admin.Repository.UpdateLastLogin
func (r *AdminRepository) UpdateLastLogin(ctx context.Context, id string) error {
	query := `UPDATE admins SET last_login_at = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("falha ao atualizar último login: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAdminNotFound
	}
	return nil
}

// Delete implementa admin.Repository.Delete
func (r *AdminRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("falha ao excluir administrador: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAdminNotFound
	}
	return nil
}

// Count implementa admin.Repository.Count
func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return 0, fmt.Errorf("falha ao contar administradores: %w", err)
	}
	return count, nil
}

// CountActive implementa admin.Repository.CountActive
func (r *AdminRepository) CountActive(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM admins WHERE is_active`).Scan(&count); err != nil {
		return 0, fmt.Errorf("falha ao contar administradores ativos: %w", err)
	}
	return count, nil
}

func scanAdmin(row pgx.Row) (*admin.Admin, error) {
	a := &admin.Admin{}
	var role string

	err := row.Scan(
		&a.ID,
		&a.Email,
		&a.Name,
		&a.PasswordHash,
		&role,
		&a.IsActive,
		&a.LastLoginAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Role = admin.Role(role)
	return a, nil
}
