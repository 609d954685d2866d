package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/seqpilot/runreport/internal/resource"
)

// TestNewConfig tests default configuration values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	if cfg.PipelineName != DefaultPipelineName {
		t.Errorf("expected %q, got %q", DefaultPipelineName, cfg.PipelineName)
	}
	if cfg.BundleDir != DefaultBundleDir {
		t.Errorf("expected %q, got %q", DefaultBundleDir, cfg.BundleDir)
	}
	if cfg.BatchSize != DefaultBatchSize {
		t.Errorf("expected %d, got %d", DefaultBatchSize, cfg.BatchSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate, got %v", err)
	}
}

// TestConfigValidate tests configuration validation.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty pipeline name", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.PipelineName = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoPipelineName) {
			t.Errorf("expected ErrNoPipelineName, got %v", err)
		}
	})

	t.Run("rejects empty bundle dir", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.BundleDir = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoBundleDir) {
			t.Errorf("expected ErrNoBundleDir, got %v", err)
		}
	})

	t.Run("rejects non-positive batch size", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.BatchSize = 0
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidBatchSize) {
			t.Errorf("expected ErrInvalidBatchSize, got %v", err)
		}
	})
}

// TestLoadResources tests resource map loading from YAML.
func TestLoadResources(t *testing.T) {
	t.Parallel()

	t.Run("loads records preserving order", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".runreport")
		content := `resources:
  bwa:
    - file: /opt/tools/bwa
      version: "0.7.12"
  knownIndels:
    - file: fileA
      version: "1.2"
    - file: fileB
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		m, err := LoadResources(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := m.Version(resource.BWA); got != "0.7.12" {
			t.Errorf("expected 0.7.12, got %q", got)
		}

		indels := m[resource.KnownIndels]
		if len(indels) != 2 {
			t.Fatalf("expected 2 indel records, got %d", len(indels))
		}
		if indels[0].File != "fileA" || indels[0].Version != "1.2" {
			t.Errorf("unexpected first record: %+v", indels[0])
		}
		if indels[1].File != "fileB" || indels[1].Version != "" {
			t.Errorf("unexpected second record: %+v", indels[1])
		}
	})

	t.Run("returns ErrResourcesNotFound for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadResources(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrResourcesNotFound) {
			t.Errorf("expected ErrResourcesNotFound, got %v", err)
		}
	})

	t.Run("returns error for malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".runreport")
		if err := os.WriteFile(path, []byte(":\tnot yaml"), 0600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		if _, err := LoadResources(path); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})
}

// TestFindResourcesFile tests the search order for the resources file.
func TestFindResourcesFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path when it exists", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("resources: {}\n"), 0600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		if got := FindResourcesFile(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("returns empty string for missing explicit path", func(t *testing.T) {
		t.Parallel()

		if got := FindResourcesFile(filepath.Join(t.TempDir(), "nope.yaml")); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}
