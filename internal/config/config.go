package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultPipelineName identifies the pipeline in report headers and
	// footers. Overridable for rebranded or forked installations.
	DefaultPipelineName = "SeqPilot"

	// DefaultPipelineSource is the source location named in the report
	// footer.
	DefaultPipelineSource = "https://github.com/seqpilot/seqpilot"

	// DefaultBundleDir is where a standard installation keeps its
	// packaged tool bundles. Version resolution scans the archives in
	// this directory.
	DefaultBundleDir = "/opt/seqpilot/bundles"

	// DefaultBatchSize is the number of reports generated concurrently
	// when rendering summaries for multiple runs. Report generation is
	// I/O bound and cheap; a small limit keeps file-handle usage modest.
	DefaultBatchSize = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "runreport"
)

// Config holds all configuration options for report generation.
// It is populated from CLI flags and passed through the application via
// dependency injection rather than global state.
type Config struct {
	// PipelineName and PipelineSource identify the pipeline in the
	// rendered reports.
	PipelineName   string
	PipelineSource string

	// BundleDir is the directory containing the installed package
	// archives that pipeline and toolkit versions are resolved from.
	BundleDir string

	// ResourcesFile is the path to the resource-version configuration
	// file. If empty, the loader searches for .runreport in the current
	// directory and then in the user's home directory.
	ResourcesFile string

	// HistoryDir is the directory for the report-history database.
	// When empty, generated reports are not recorded.
	HistoryDir string

	// SaveHistory indicates whether to record generated reports in the
	// history database. Automatically set when HistoryDir is configured.
	SaveHistory bool

	// Markdown switches output to the Markdown rendition instead of the
	// canonical plain-text README.
	Markdown bool

	// BatchSize is the number of concurrent report generations when
	// rendering summaries for multiple runs.
	BatchSize int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		PipelineName:   DefaultPipelineName,
		PipelineSource: DefaultPipelineSource,
		BundleDir:      DefaultBundleDir,
		BatchSize:      DefaultBatchSize,
	}
}

// Validate checks the configuration for values that would make report
// generation impossible or meaningless.
func (c *Config) Validate() error {
	if c.PipelineName == "" {
		return ErrNoPipelineName
	}
	if c.BundleDir == "" {
		return ErrNoBundleDir
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	return nil
}

// XDGDataDir returns the XDG data directory for runreport.
// On Linux: ~/.local/share/runreport
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}
