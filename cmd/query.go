package cmd

import (
	"github.com/lehigh-university-libraries/booktldr/internal/config"
	"github.com/lehigh-university-libraries/booktldr/internal/matcher"
	"github.com/lehigh-university-libraries/booktldr/internal/models"
	"github.com/lehigh-university-libraries/booktldr/internal/report"
	"github.com/lehigh-university-libraries/booktldr/internal/resources"
	"github.com/lehigh-university-libraries/booktldr/internal/search"
	"github.com/spf13/cobra"
)

// matchFlags override the matching and output settings from the config file
type matchFlags struct {
	strategy  string
	scorer    string
	threshold int
	naming    string
	resources string
	format    string
}

func (f *matchFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if flags.Changed("scorer") {
		cfg.FuzzyScorer = f.scorer
	}
	if flags.Changed("threshold") {
		cfg.FuzzyThreshold = f.threshold
	}
	if flags.Changed("naming") {
		cfg.ResourceNaming = f.naming
	}
	if flags.Changed("resources") {
		cfg.ResourceDir = f.resources
	}
	if flags.Changed("format") {
		cfg.Format = f.format
	}
	return cfg.Validate()
}

func newQueryCmd(s *settings) *cobra.Command {
	var query models.Query
	var mf matchFlags

	cmd := &cobra.Command{
		Use:   "booktldr",
		Short: "Look up book code listings by chapter, description, listing or status",
		Long: `booktldr filters a catalog of book code listings.

Every flag is a partial match against one field; a listing is shown when all
four fields match. Several matches print their metadata, a single match also
prints the listing's content.

By default each flag value is split on spaces and every piece must appear in
the field. The fuzzy strategy instead accepts approximate matches scoring at
or above a threshold.`,
		Example: `  # Every desired listing mentioning "test"
  booktldr -d test

  # A single listing with its content
  booktldr -c 1

  # Listings in any status
  booktldr -s ""

  # Approximate description match
  booktldr --strategy fuzzy -d "anothr tst"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, s)
			if err != nil {
				return err
			}
			if err := mf.apply(cmd, &cfg); err != nil {
				return err
			}

			if !cmd.Flags().Changed("status") {
				query.Status = cfg.DefaultStatus
			}

			cat, err := openCatalog(cfg.Catalog)
			if err != nil {
				return err
			}

			m, err := matcher.New(cfg.MatcherOptions())
			if err != nil {
				return err
			}

			naming, err := resources.ParseNaming(cfg.ResourceNaming)
			if err != nil {
				return err
			}

			format, err := report.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}

			var lookup resources.Lookup = resources.Embedded()
			if cfg.ResourceDir != "" {
				lookup = resources.Dir(cfg.ResourceDir)
			}

			hits := search.NewEngine(cat, m).Search(query)

			return report.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, lookup, naming).Print(hits)
		},
	}

	cmd.Flags().StringVarP(&query.Chapter, "chapter", "c", "", "Match the chapter")
	cmd.Flags().StringVarP(&query.Description, "description", "d", "", "Match the description")
	cmd.Flags().StringVarP(&query.ListingID, "listing", "l", "", "Match the listing identifier")
	cmd.Flags().StringVarP(&query.Status, "status", "s", "desired", "Match the status")

	cmd.Flags().StringVar(&mf.strategy, "strategy", "tokens", "Match strategy (tokens or fuzzy)")
	cmd.Flags().StringVar(&mf.scorer, "scorer", "skim", "Fuzzy scorer (skim, jaro-winkler or levenshtein)")
	cmd.Flags().IntVar(&mf.threshold, "threshold", matcher.DefaultThreshold, "Minimum fuzzy score for a match")
	cmd.Flags().StringVar(&mf.naming, "naming", "direct", "Content file naming (direct or bracketed)")
	cmd.Flags().StringVar(&mf.resources, "resources", "", "Directory holding listing content; empty uses the embedded listings")
	cmd.Flags().StringVar(&mf.format, "format", "text", "Output format (text, yaml or json)")

	return cmd
}
