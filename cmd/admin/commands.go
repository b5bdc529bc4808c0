package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/gordosalgados/gordo-salgados/internal/domain/admin"
	"github.com/gordosalgados/gordo-salgados/pkg/auth"
	"github.com/spf13/cobra"
)

const minPasswordLength = 8

var errShortPassword = fmt.Errorf("a senha deve ter pelo menos %d caracteres", minPasswordLength)

// passwordFrom usa a flag ou, se vazia, a variável ADMIN_PASSWORD
func passwordFrom(flag string) (string, error) {
	password := flag
	if password == "" {
		password = os.Getenv("ADMIN_PASSWORD")
	}
	if password == "" {
		return "", errors.New("informe a senha com --password ou ADMIN_PASSWORD")
	}
	if err := checkPasswordLength(password); err != nil {
		return "", err
	}
	return password, nil
}

// checkPasswordLength aplica o mínimo do painel e o limite do bcrypt em bytes
func checkPasswordLength(password string) error {
	switch {
	case len(password) < minPasswordLength:
		return errShortPassword
	case len(password) > auth.MaxPasswordLength:
		return auth.ErrPasswordTooLong
	}
	return nil
}

func newCreateCommand(open repositoryOpener) *cobra.Command {
	var email, name, password, role string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Cria uma conta administrativa",
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := passwordFrom(password)
			if err != nil {
				return err
			}

			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}

			account, err := admin.NewAdmin(email, name, hash, admin.Role(role))
			if err != nil {
				return err
			}

			return withRepository(cmd.Context(), open, func(repo admin.Repository) error {
				if err := repo.Create(cmd.Context(), account); err != nil {
					return fmt.Errorf("erro ao criar administrador: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "administrador criado: %s (%s)\n", account.Email, account.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email de login")
	cmd.Flags().StringVar(&name, "name", "", "Nome exibido no painel")
	cmd.Flags().StringVar(&password, "password", "", "Senha (ou ADMIN_PASSWORD)")
	cmd.Flags().StringVar(&role, "role", string(admin.RoleSuperAdmin), "super_admin, editor ou viewer")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSetPasswordCommand(open repositoryOpener) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "set-password",
		Short: "Redefine a senha de uma conta",
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := passwordFrom(password)
			if err != nil {
				return err
			}

			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}

			return withRepository(cmd.Context(), open, func(repo admin.Repository) error {
				account, err := repo.FindByEmail(cmd.Context(), email)
				if err != nil {
					return fmt.Errorf("erro ao buscar administrador: %w", err)
				}
				if err := repo.UpdatePassword(cmd.Context(), account.ID, hash); err != nil {
					return fmt.Errorf("erro ao atualizar senha: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "senha atualizada: %s\n", account.Email)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email da conta")
	cmd.Flags().StringVar(&password, "password", "", "Nova senha (ou ADMIN_PASSWORD)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newListCommand(open repositoryOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lista as contas administrativas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRepository(cmd.Context(), open, func(repo admin.Repository) error {
				admins, err := repo.List(cmd.Context())
				if err != nil {
					return fmt.Errorf("erro ao listar administradores: %w", err)
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				_, _ = fmt.Fprintln(w, "EMAIL\tNOME\tPAPEL\tATIVO\tÚLTIMO LOGIN")
				for _, a := range admins {
					lastLogin := "-"
					if a.LastLoginAt != nil {
						lastLogin = a.LastLoginAt.Format(time.RFC3339)
					}
					_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", a.Email, a.Name, a.Role, a.IsActive, lastLogin)
				}
				return w.Flush()
			})
		},
	}
}

func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <senha>",
		Short: "Gera o hash bcrypt de uma senha",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkPasswordLength(args[0]); err != nil {
				return err
			}
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
