// Command blossom is the shop's entry point: HTTP server, migrations,
// seeders and token minting.
package main

import (
	"fmt"
	"os"

	"github.com/blossom-shop/blossom/app/models"
	"github.com/blossom-shop/blossom/config"
	_ "github.com/blossom-shop/blossom/database/migrations"
	"github.com/blossom-shop/blossom/database/seeders"
	"github.com/blossom-shop/blossom/internal/server"
	"github.com/blossom-shop/blossom/pkg/database"
	"github.com/blossom-shop/blossom/pkg/migration"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "blossom",
		Short:         "Blossom shop backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		serveCmd(),
		migrateCmd(),
		rollbackCmd(),
		statusCmd(),
		seedCmd(),
		tokenCreateCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.Run()
		},
	}
}

// withDB loads config, opens the database and hands it to fn.
func withDB(fn func() error) error {
	if err := config.Load(); err != nil {
		return err
	}
	if err := database.Connect(); err != nil {
		return err
	}
	return fn()
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func() error {
				return migration.New(database.DB).Run()
			})
		},
	}
}

func rollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:rollback",
		Short: "Roll back the last migration batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func() error {
				return migration.New(database.DB).Rollback()
			})
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate:status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func() error {
				return migration.New(database.DB).Status()
			})
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func() error {
				return seeders.Run(database.DB)
			})
		},
	}
}

func tokenCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token:create",
		Short: "Mint a fresh admin token",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func() error {
				token, err := seeders.RandomToken()
				if err != nil {
					return err
				}
				if err := database.DB.Create(&models.AdminToken{Token: token}).Error; err != nil {
					return err
				}
				fmt.Println(token)
				return nil
			})
		},
	}
}
