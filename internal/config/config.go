package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lehigh-university-libraries/booktldr/internal/matcher"
	"github.com/lehigh-university-libraries/booktldr/internal/report"
	"github.com/lehigh-university-libraries/booktldr/internal/resources"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFileName is read from the working directory when no config path is given
const DefaultFileName = "booktldr.toml"

// EnvPrefix is prepended to every environment override
const EnvPrefix = "BOOKTLDR_"

type Config struct {
	Strategy       string `toml:"strategy"`
	FuzzyScorer    string `toml:"fuzzy_scorer"`
	FuzzyThreshold int    `toml:"fuzzy_threshold"`
	DefaultStatus  string `toml:"default_status"`
	Catalog        string `toml:"catalog"`      // catalog file; empty uses the built-in catalog
	ResourceDir    string `toml:"resource_dir"` // empty uses the embedded listings
	ResourceNaming string `toml:"resource_naming"`
	Format         string `toml:"format"`
}

func Default() Config {
	return Config{
		Strategy:       string(matcher.StrategyTokens),
		FuzzyScorer:    "skim",
		FuzzyThreshold: matcher.DefaultThreshold,
		DefaultStatus:  "desired",
		ResourceNaming: string(resources.NamingDirect),
		Format:         string(report.FormatText),
	}
}

// Load builds the configuration from defaults, the TOML file at path and the environment.
// An empty path reads DefaultFileName if it exists.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(filepath.Clean(path))
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	fields := map[string]*string{
		"STRATEGY":        &c.Strategy,
		"FUZZY_SCORER":    &c.FuzzyScorer,
		"DEFAULT_STATUS":  &c.DefaultStatus,
		"CATALOG":         &c.Catalog,
		"RESOURCE_DIR":    &c.ResourceDir,
		"RESOURCE_NAMING": &c.ResourceNaming,
		"FORMAT":          &c.Format,
	}
	for key, dst := range fields {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv(EnvPrefix + "FUZZY_THRESHOLD"); ok {
		threshold, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sFUZZY_THRESHOLD %q: %w", EnvPrefix, v, err)
		}
		c.FuzzyThreshold = threshold
	}

	return nil
}

// Validate rejects unknown strategy, scorer, naming and format values
func (c Config) Validate() error {
	if _, err := matcher.New(c.MatcherOptions()); err != nil {
		return err
	}
	if _, err := matcher.ScorerByName(c.FuzzyScorer); err != nil {
		return err
	}
	if _, err := resources.ParseNaming(c.ResourceNaming); err != nil {
		return err
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}

// MatcherOptions converts the matching settings
func (c Config) MatcherOptions() matcher.Options {
	return matcher.Options{
		Strategy:  matcher.Strategy(c.Strategy),
		Scorer:    c.FuzzyScorer,
		Threshold: c.FuzzyThreshold,
	}
}
