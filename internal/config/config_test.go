package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lehigh-university-libraries/booktldr/internal/matcher"
	"github.com/lehigh-university-libraries/booktldr/internal/report"
	"github.com/lehigh-university-libraries/booktldr/internal/resources"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "booktldr.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
	if cfg.DefaultStatus != "desired" {
		t.Errorf("Expected default status 'desired', got %q", cfg.DefaultStatus)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
strategy = "fuzzy"
fuzzy_scorer = "jaro-winkler"
fuzzy_threshold = 70
resource_naming = "bracketed"
catalog = "listings.yaml"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := Default()
	want.Strategy = "fuzzy"
	want.FuzzyScorer = "jaro-winkler"
	want.FuzzyThreshold = 70
	want.ResourceNaming = "bracketed"
	want.Catalog = "listings.yaml"

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDefaultFileFromWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DefaultFileName), []byte(`format = "yaml"`), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Format != "yaml" {
		t.Errorf("Expected format yaml, got %q", cfg.Format)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
strategy = "fuzzy"
fuzzy_threshold = 70
`)
	t.Setenv("BOOKTLDR_STRATEGY", "tokens")
	t.Setenv("BOOKTLDR_FUZZY_THRESHOLD", "20")
	t.Setenv("BOOKTLDR_DEFAULT_STATUS", "draft")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Strategy != "tokens" {
		t.Errorf("Expected strategy tokens, got %q", cfg.Strategy)
	}
	if cfg.FuzzyThreshold != 20 {
		t.Errorf("Expected threshold 20, got %d", cfg.FuzzyThreshold)
	}
	if cfg.DefaultStatus != "draft" {
		t.Errorf("Expected default status draft, got %q", cfg.DefaultStatus)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		env     map[string]string
		wantErr error
	}{
		{name: "unknown strategy", config: `strategy = "regex"`, wantErr: matcher.ErrUnknownStrategy},
		{name: "unknown scorer", config: `fuzzy_scorer = "soundex"`, wantErr: matcher.ErrUnknownScorer},
		{name: "unknown naming", config: `resource_naming = "slug"`, wantErr: resources.ErrUnknownNaming},
		{name: "unknown format", config: `format = "xml"`, wantErr: report.ErrUnknownFormat},
		{name: "malformed toml", config: `strategy = `},
		{name: "bad threshold env", config: ``, env: map[string]string{"BOOKTLDR_FUZZY_THRESHOLD": "high"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(writeConfig(t, tt.config))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load("/nonexistent/booktldr.toml"); err == nil {
		t.Error("Expected error for missing explicit config, got nil")
	}
}
