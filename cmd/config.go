package cmd

import (
	"fmt"

	"github.com/lehigh-university-libraries/booktldr/internal/catalog"
	"github.com/lehigh-university-libraries/booktldr/internal/config"
	"github.com/spf13/cobra"
)

// loadConfig reads file and environment settings, then applies the persistent flags set on the command line
func loadConfig(cmd *cobra.Command, s *settings) (config.Config, error) {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("catalog") {
		cfg.Catalog = s.catalog
	}

	return cfg, nil
}

// openCatalog loads the configured catalog file, or the built-in catalog when none is set
func openCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}

	c, err := catalog.NewLoader(path).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return c, nil
}
