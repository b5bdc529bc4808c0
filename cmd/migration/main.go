package main

import (
	"fmt"
	"log"

	"github.com/gordosalgados/gordo-salgados/internal/config"
	"github.com/gordosalgados/gordo-salgados/internal/infrastructure/database"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	if err := newRootCommand().Execute(); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "migration",
		Short:         "Gerencia o esquema do banco de dados",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Aplica as migrações pendentes",
			RunE: func(*cobra.Command, []string) error {
				return withMigrator(func(mg *database.Migrator) error {
					if err := mg.Up(); err != nil {
						return err
					}
					log.Println("Migrações executadas com sucesso!")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Desfaz a última migração",
			RunE: func(*cobra.Command, []string) error {
				return withMigrator(func(mg *database.Migrator) error {
					if err := mg.Down(); err != nil {
						return err
					}
					log.Println("Última migração desfeita")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Mostra a versão atual do esquema",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(func(mg *database.Migrator) error {
					version, dirty, err := mg.Version()
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "versão: %d (dirty: %t)\n", version, dirty)
					return nil
				})
			},
		},
	)

	return root
}

func withMigrator(fn func(*database.Migrator) error) error {
	mg, err := database.NewMigrator(config.DatabaseURL())
	if err != nil {
		return err
	}
	defer mg.Close()

	return fn(mg)
}
