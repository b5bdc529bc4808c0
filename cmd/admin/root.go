package main

import (
	"context"

	"github.com/gordosalgados/gordo-salgados/internal/adapter/repository"
	"github.com/gordosalgados/gordo-salgados/internal/config"
	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
	"github.com/gordosalgados/gordo-salgados/internal/infrastructure/database"
	"github.com/spf13/cobra"
)

// repositoryOpener abre o repositório de administradores; substituído nos testes
type repositoryOpener func(ctx context.Context) (admin.Repository, func(), error)

func openPostgres(ctx context.Context) (admin.Repository, func(), error) {
	pool, err := database.NewPostgresPool(ctx, config.LoadDatabase())
	if err != nil {
		return nil, nil, err
	}
	return repository.NewAdminRepository(pool), pool.Close, nil
}

func newRootCommand() *cobra.Command {
	return newRootCommandWith(openPostgres)
}

func newRootCommandWith(open repositoryOpener) *cobra.Command {
	root := &cobra.Command{
		Use:           "admin",
		Short:         "Gerencia as contas do painel da Gordo Salgados",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCreateCommand(open))
	root.AddCommand(newSetPasswordCommand(open))
	root.AddCommand(newListCommand(open))
	root.AddCommand(newHashPasswordCommand())

	return root
}

func withRepository(ctx context.Context, open repositoryOpener, fn func(admin.Repository) error) error {
	repo, closeFn, err := open(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	return fn(repo)
}
