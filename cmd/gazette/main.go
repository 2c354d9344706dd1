package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gazette-press/gazette/internal/interfaces/cli/migrate"
	"github.com/gazette-press/gazette/internal/interfaces/cli/scheduler"
	"github.com/gazette-press/gazette/internal/interfaces/cli/seed"
	"github.com/gazette-press/gazette/internal/interfaces/cli/server"
	"github.com/gazette-press/gazette/internal/interfaces/cli/worker"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gazette",
		Short: "Gazette - news publishing backend",
		Long:  `Gazette is the publishing backend: HTTP API server, background worker, promotion scheduler, and database tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		worker.NewCommand(),
		scheduler.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
