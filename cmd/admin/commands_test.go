package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
	"github.com/gordosalgados/gordo-salgados/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("administrador não encontrado")

// memoryRepository guarda as contas em memória
type memoryRepository struct {
	admin.Repository
	admins map[string]*admin.Admin
	closed bool
}

func (r *memoryRepository) Create(_ context.Context, a *admin.Admin) error {
	r.admins[a.Email] = a
	return nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (*admin.Admin, error) {
	a, ok := r.admins[admin.NormalizeEmail(email)]
	if !ok {
		return nil, errNotFound
	}
	return a, nil
}

func (r *memoryRepository) UpdatePassword(_ context.Context, id, hash string) error {
	for _, a := range r.admins {
		if a.ID == id {
			a.PasswordHash = hash
			return nil
		}
	}
	return errNotFound
}

func (r *memoryRepository) List(context.Context) ([]*admin.Admin, error) {
	out := make([]*admin.Admin, 0, len(r.admins))
	for _, a := range r.admins {
		out = append(out, a)
	}
	return out, nil
}

func run(t *testing.T, repo *memoryRepository, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ADMIN_PASSWORD", "")

	open := func(context.Context) (admin.Repository, func(), error) {
		return repo, func() { repo.closed = true }, nil
	}
	cmd := newRootCommandWith(open)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCreateCommand(t *testing.T) {
	repo := &memoryRepository{admins: map[string]*admin.Admin{}}

	out, err := run(t, repo, "create", "--email", "Dono@GordoSalgados.com", "--name", "Dono", "--password", "senhaForte1")
	require.NoError(t, err)
	assert.Contains(t, out, "dono@gordosalgados.com")
	assert.True(t, repo.closed)

	created := repo.admins["dono@gordosalgados.com"]
	require.NotNil(t, created)
	assert.Equal(t, admin.RoleSuperAdmin, created.Role)
	assert.True(t, auth.CheckPassword("senhaForte1", created.PasswordHash))
}

func TestCreateCommand_Validation(t *testing.T) {
	repo := &memoryRepository{admins: map[string]*admin.Admin{}}

	_, err := run(t, repo, "create", "--email", "a@b.com", "--name", "A", "--password", "curta")
	assert.ErrorIs(t, err, errShortPassword)

	_, err = run(t, repo, "create", "--email", "a@b.com", "--name", "A", "--password", strings.Repeat("x", 73))
	assert.ErrorIs(t, err, auth.ErrPasswordTooLong)

	_, err = run(t, repo, "create", "--email", "a@b.com", "--name", "A", "--password", "senhaForte1", "--role", "owner")
	assert.ErrorIs(t, err, admin.ErrInvalidRole)

	_, err = run(t, repo, "create", "--email", "a@b.com", "--name", "A")
	assert.Error(t, err)
	assert.Empty(t, repo.admins)
}

func TestSetPasswordCommand(t *testing.T) {
	account, err := admin.NewAdmin("editor@gordosalgados.com", "Editor", "hash-antigo", admin.RoleEditor)
	require.NoError(t, err)
	repo := &memoryRepository{admins: map[string]*admin.Admin{account.Email: account}}

	_, err = run(t, repo, "set-password", "--email", "editor@gordosalgados.com", "--password", "novaSenha99")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword("novaSenha99", account.PasswordHash))

	_, err = run(t, repo, "set-password", "--email", "ninguem@gordosalgados.com", "--password", "novaSenha99")
	assert.ErrorIs(t, err, errNotFound)

	_, err = run(t, repo, "set-password", "--email", "editor@gordosalgados.com", "--password", strings.Repeat("ç", 37))
	assert.ErrorIs(t, err, auth.ErrPasswordTooLong)
	assert.True(t, auth.CheckPassword("novaSenha99", account.PasswordHash))
}

func TestListCommand(t *testing.T) {
	account, err := admin.NewAdmin("viewer@gordosalgados.com", "Viewer", "hash", admin.RoleViewer)
	require.NoError(t, err)
	repo := &memoryRepository{admins: map[string]*admin.Admin{account.Email: account}}

	out, err := run(t, repo, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "viewer@gordosalgados.com")
	assert.Contains(t, lines[1], "viewer")
}

func TestHashPasswordCommand(t *testing.T) {
	out, err := run(t, nil, "hash-password", "senhaForte1")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword("senhaForte1", strings.TrimSpace(out)))

	_, err = run(t, nil, "hash-password", "curta")
	assert.ErrorIs(t, err, errShortPassword)

	_, err = run(t, nil, "hash-password", strings.Repeat("x", 80))
	assert.ErrorIs(t, err, auth.ErrPasswordTooLong)
}
