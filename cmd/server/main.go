package main

import (
	"fmt"
	"os"

	"gestao-ativos-backend/internal/config"
	"gestao-ativos-backend/internal/database"
	"gestao-ativos-backend/internal/server"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gestao-ativos",
		Short:         "API de gestão de ativos de TI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newInitDBCommand())
	return cmd
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Sobe o servidor HTTP da API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			database.Init(cfg)

			app := server.New(cfg)

			log.WithField("port", cfg.HTTPPort).Info("Servidor iniciado")
			return app.Listen(":" + cfg.HTTPPort)
		},
	}
}

// Bootstrap fora do caminho das requisições: cria o esquema e popula os dados
// de exemplo quando a tabela de ativos está vazia.
func newInitDBCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Cria as tabelas e popula a base com dados de exemplo",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			database.Init(cfg)

			seeded, err := database.SeedExampleData(database.DB)
			if err != nil {
				return err
			}
			if seeded {
				log.Info("Base de dados populada com dados de exemplo")
			} else {
				log.Info("A base de dados já contém dados; nenhuma ação foi tomada")
			}
			return nil
		},
	}
}
