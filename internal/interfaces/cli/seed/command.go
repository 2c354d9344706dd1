// Package seed implements the database seeding subcommand.
package seed

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gazette-press/gazette/internal/infrastructure/auth"
	"github.com/gazette-press/gazette/internal/infrastructure/config"
	"github.com/gazette-press/gazette/internal/infrastructure/database"
	"github.com/gazette-press/gazette/internal/infrastructure/persistence/seeds"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database",
		Long:  `Seed the vertical catalog and the default admin account.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	if err := seeds.Run(database.Get(), hasher); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	logger.Info("database seeded")
	return nil
}
