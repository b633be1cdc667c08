package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vitrine-app/vitrine/internal/interfaces/cli/migrate"
	"github.com/vitrine-app/vitrine/internal/interfaces/cli/server"
)

func main() {
	// Missing .env is fine; configuration falls back to config files
	// and VITRINE_ environment variables.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "vitrine",
		Short: "Vitrine - a membership-gated profile directory",
		Long:  `Vitrine serves a ranked public profile directory with subscription-based visibility tiers, payment review, and moderation tooling.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
