package cmd

import (
	"fmt"
	"log/slog"

	"github.com/lehigh-university-libraries/booktldr/internal/catalog"
	"github.com/spf13/cobra"
)

func newCatalogCmd(s *settings) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print or export the listing catalog",
		Long: `Prints the active catalog as YAML, or writes it to a file.

The output format follows the file extension: .yaml, .jsonl or .parquet.
An exported file can be passed back with --catalog.`,
		Example: `  # Show the built-in catalog
  booktldr catalog

  # Convert a YAML catalog to Parquet
  booktldr catalog --catalog listings.yaml --output listings.parquet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, s)
			if err != nil {
				return err
			}

			cat, err := openCatalog(cfg.Catalog)
			if err != nil {
				return err
			}

			if output == "" {
				data, err := catalog.MarshalYAML(cat)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if err := catalog.WriteFile(output, cat); err != nil {
				return err
			}

			slog.Info("Catalog exported", "path", output, "listings", cat.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d listings to %s\n", cat.Len(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the catalog to this file instead of stdout")

	return cmd
}
