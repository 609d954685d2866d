package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/seqpilot/runreport/internal/resource"
)

// DefaultResourcesFile is the default resource configuration file name.
const DefaultResourcesFile = ".runreport"

// ErrResourcesNotFound is returned when the resource configuration file
// does not exist.
var ErrResourcesNotFound = errors.New("resource configuration file not found")

// RecordEntry is a single file/version record in the resources file.
type RecordEntry struct {
	// File is the file name or path of the resource.
	File string `yaml:"file"`

	// Version is the version string, omitted for resources without a
	// discoverable version.
	Version string `yaml:"version,omitempty"`
}

// ResourcesFile represents the structure of the resource configuration
// file. Keys are resource names (bwa, samtools, dbSNP, knownIndels, ...)
// and each maps to one or more file/version records.
type ResourcesFile struct {
	Resources map[string][]RecordEntry `yaml:"resources"`
}

// LoadResources loads a resource map from a YAML file.
// If the file does not exist, it returns ErrResourcesNotFound.
// Record order within each key is preserved from the file.
func LoadResources(path string) (resource.Map, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrResourcesNotFound
		}
		return nil, err
	}

	var rf ResourcesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, err
	}

	m := make(resource.Map, len(rf.Resources))
	for key, entries := range rf.Resources {
		records := make([]resource.Record, 0, len(entries))
		for _, e := range entries {
			records = append(records, resource.Record{File: e.File, Version: e.Version})
		}
		m[resource.Key(key)] = records
	}
	return m, nil
}

// RunEntry describes one run to summarize in a runs manifest.
type RunEntry struct {
	// Kind is the report variant: rna, dna, or amplicon.
	Kind string `yaml:"kind"`

	// Reference is the reference genome file name.
	Reference string `yaml:"reference"`

	// Transcripts is the transcript annotation file; RNA runs only.
	Transcripts string `yaml:"transcripts,omitempty"`

	// Mask is the optional mask file; RNA runs only.
	Mask string `yaml:"mask,omitempty"`

	// Output is where the rendered report is written.
	Output string `yaml:"output"`
}

// RunsFile represents the structure of a runs manifest: a list of runs
// to generate summaries for in one invocation.
type RunsFile struct {
	Runs []RunEntry `yaml:"runs"`
}

// LoadRuns loads a runs manifest from a YAML file.
func LoadRuns(path string) ([]RunEntry, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided manifest path is intentional
	if err != nil {
		return nil, err
	}

	var rf RunsFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, err
	}
	return rf.Runs, nil
}

// FindResourcesFile searches for the resource configuration file in the
// following order:
// 1. If path is specified, use it directly
// 2. Look for .runreport in the current directory
// 3. Look for .runreport in the user's home directory
//
// Returns the path if found, or empty string if not found.
func FindResourcesFile(path string) string {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdFile := filepath.Join(cwd, DefaultResourcesFile)
		if _, err := os.Stat(cwdFile); err == nil {
			return cwdFile
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeFile := filepath.Join(home, DefaultResourcesFile)
		if _, err := os.Stat(homeFile); err == nil {
			return homeFile
		}
	}

	return ""
}
