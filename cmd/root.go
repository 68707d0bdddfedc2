package cmd

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// settings holds the persistent flags shared by every command
type settings struct {
	configPath string
	catalog    string
	verbose    bool
}

func NewRootCmd() *cobra.Command {
	s := &settings{}

	cmd := newQueryCmd(s)
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// Load .env file if present (ignore errors)
		_ = godotenv.Load()

		level := slog.LevelWarn
		if s.verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	}

	cmd.PersistentFlags().StringVar(&s.configPath, "config", "", "Path to a TOML config file (default ./booktldr.toml if present)")
	cmd.PersistentFlags().StringVar(&s.catalog, "catalog", "", "Catalog file (.yaml, .jsonl or .parquet); empty uses the built-in catalog")
	cmd.PersistentFlags().BoolVar(&s.verbose, "verbose", false, "Verbose logging")

	// Add subcommands
	cmd.AddCommand(newCatalogCmd(s))

	return cmd
}
