package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seqpilot/runreport/internal/archive"
	"github.com/seqpilot/runreport/internal/config"
	"github.com/seqpilot/runreport/internal/history"
	"github.com/seqpilot/runreport/internal/log"
	"github.com/seqpilot/runreport/internal/model"
	"github.com/seqpilot/runreport/internal/pipeline"
	"github.com/seqpilot/runreport/internal/report"
	"github.com/seqpilot/runreport/internal/resource"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a run-summary README",
		Long: `Render generates the README report for a completed analysis run.

Tool and reference versions come from the resource configuration file;
the pipeline's own version and the GATK toolkit version are resolved
from the installed package archives in the bundle directory. Versions
that cannot be resolved are reported as "Unknown".

Examples:
  # DNA variant-calling best-practice report
  runreport render --kind dna --reference hg19.fa --output /results/run42/README.txt

  # RNA quantification report with an rRNA mask file
  runreport render --kind rna --reference hg19.fa \
    --transcripts gencode.v19.gtf --mask /refs/rRNA_mask.gtf \
    --output /results/run43/README.txt

  # Targeted amplicon panel report (bundle keys come from the resources file)
  runreport render --kind amplicon --reference hg19.fa --output README.txt

  # Summaries for many runs from a manifest, four at a time
  runreport render --runs runs.yaml --batch 4

Resource configuration file (.runreport) example:
  resources:
    bwa:
      - file: /opt/tools/bwa
        version: "0.7.12"
    knownIndels:
      - file: Mills_and_1000G_gold_standard.indels.vcf
        version: "1.2"
      - file: 1000G_phase1.indels.vcf`,
		Args: cobra.NoArgs,
		RunE: runRenderCmd,
	}

	// Report selection flags
	cmd.Flags().StringP("kind", "k", "",
		"Report kind: rna, dna, or amplicon")
	cmd.Flags().StringP("reference", "r", "",
		"Reference genome file name")
	cmd.Flags().StringP("transcripts", "t", "",
		"Transcript annotation file (rna reports)")
	cmd.Flags().StringP("mask", "m", "",
		"Optional mask file (rna reports)")
	cmd.Flags().StringP("output", "o", "",
		"Output file path for the report (creates directories if needed)")

	// Batch flags
	cmd.Flags().StringP("runs", "f", "",
		"Runs manifest file: render a report per listed run")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent report generations with --runs")

	// Version resolution flags
	cmd.Flags().StringP("resources", "R", "",
		"Resource configuration file path (default: .runreport in current or home directory)")
	cmd.Flags().StringP("bundle-dir", "B", config.DefaultBundleDir,
		"Directory containing the installed package archives")

	// Pipeline identity flags
	cmd.Flags().String("pipeline-name", config.DefaultPipelineName,
		"Pipeline name for the report header and footer")
	cmd.Flags().String("pipeline-source", config.DefaultPipelineSource,
		"Pipeline source location for the report footer")

	// Output format and history flags
	cmd.Flags().Bool("markdown", false,
		"Write the Markdown rendition instead of the plain-text README")
	cmd.Flags().String("history-dir", config.XDGDataDir(),
		"Directory for the report history database")
	cmd.Flags().Bool("no-history", false,
		"Do not record the generated report in the history database")

	return cmd
}

// runRenderCmd executes the render command.
func runRenderCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	resources, err := loadResources(cfg.ResourcesFile, logger)
	if err != nil {
		return err
	}

	resolver := archive.NewResolver(archive.DirLister(cfg.BundleDir))
	renderer := report.NewRenderer(resolver, cfg.PipelineName, cfg.PipelineSource)

	opts := []pipeline.GeneratorOption{
		pipeline.WithLogger(logger),
		pipeline.WithMarkdown(cfg.Markdown),
	}
	if cfg.SaveHistory {
		store, err := history.Open(cfg.HistoryDir, history.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer store.Close()
		opts = append(opts, pipeline.WithHistory(store))
	}
	generator := pipeline.NewGenerator(renderer, resources, opts...)

	requests, err := buildRequests(cmd, resources)
	if err != nil {
		return err
	}
	for _, req := range requests {
		if err := os.MkdirAll(filepath.Dir(req.OutputFile), 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	batch := pipeline.NewBatch(generator,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger))
	paths, err := batch.Run(cmd.Context(), requests)
	if err != nil {
		return err
	}

	for _, path := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

// buildConfig builds the configuration from command flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	if cfg.BundleDir, err = cmd.Flags().GetString("bundle-dir"); err != nil {
		return nil, err
	}
	if cfg.PipelineName, err = cmd.Flags().GetString("pipeline-name"); err != nil {
		return nil, err
	}
	if cfg.PipelineSource, err = cmd.Flags().GetString("pipeline-source"); err != nil {
		return nil, err
	}
	if cfg.Markdown, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.BatchSize, err = cmd.Flags().GetInt("batch"); err != nil {
		return nil, err
	}
	if cfg.HistoryDir, err = cmd.Flags().GetString("history-dir"); err != nil {
		return nil, err
	}
	if cfg.ResourcesFile, err = cmd.Flags().GetString("resources"); err != nil {
		return nil, err
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return nil, err
	}
	cfg.SaveHistory = !noHistory && cfg.HistoryDir != ""

	cfg.Verbose = getVerboseFlag(cmd)
	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the structured logger. All records pass through
// the privacy handler so sample identifiers never reach shared logs.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(log.NewPrivacyHandler(handler))
}

// loadResources loads the resource map. A missing default file is not
// an error: reports still render, with Unknown versions. An explicitly
// specified file that cannot be found is an error.
func loadResources(explicitPath string, logger *slog.Logger) (resource.Map, error) {
	path := config.FindResourcesFile(explicitPath)
	if path == "" {
		if explicitPath != "" {
			return nil, fmt.Errorf("%w: %s", config.ErrResourcesNotFound, explicitPath)
		}
		logger.Warn("no resource configuration file found; versions will be Unknown")
		return resource.Map{}, nil
	}

	resources, err := config.LoadResources(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load resources from %s: %w", path, err)
	}
	return resources, nil
}

// buildRequests builds the report requests, either one from flags or
// many from a runs manifest.
func buildRequests(cmd *cobra.Command, resources resource.Map) ([]*pipeline.Request, error) {
	runsPath, err := cmd.Flags().GetString("runs")
	if err != nil {
		return nil, err
	}
	if runsPath != "" {
		return requestsFromManifest(runsPath, resources)
	}

	req, err := requestFromFlags(cmd, resources)
	if err != nil {
		return nil, err
	}
	return []*pipeline.Request{req}, nil
}

// requestFromFlags builds a single report request from command flags.
func requestFromFlags(cmd *cobra.Command, resources resource.Map) (*pipeline.Request, error) {
	kind, err := cmd.Flags().GetString("kind")
	if err != nil {
		return nil, err
	}
	reference, err := cmd.Flags().GetString("reference")
	if err != nil {
		return nil, err
	}
	transcripts, err := cmd.Flags().GetString("transcripts")
	if err != nil {
		return nil, err
	}
	mask, err := cmd.Flags().GetString("mask")
	if err != nil {
		return nil, err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	if kind == "" {
		return nil, errors.New("no report kind specified: use --kind or --runs")
	}

	req := &pipeline.Request{
		Kind:        model.Kind(kind),
		Reference:   reference,
		Transcripts: transcripts,
		MaskFile:    mask,
		OutputFile:  output,
	}
	if req.Kind == model.KindAmplicon {
		req.Bundle = bundleFromResources(resources)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// requestsFromManifest builds report requests from a runs manifest.
func requestsFromManifest(path string, resources resource.Map) ([]*pipeline.Request, error) {
	runs, err := config.LoadRuns(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load runs manifest from %s: %w", path, err)
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("runs manifest %s lists no runs", path)
	}

	requests := make([]*pipeline.Request, 0, len(runs))
	for i, run := range runs {
		req := &pipeline.Request{
			Kind:        model.Kind(run.Kind),
			Reference:   run.Reference,
			Transcripts: run.Transcripts,
			MaskFile:    run.Mask,
			OutputFile:  run.Output,
		}
		if req.Kind == model.KindAmplicon {
			req.Bundle = bundleFromResources(resources)
		}
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("run %d: %w", i, err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// bundleFromResources assembles the amplicon resource bundle from the
// resource map. Here the CLI plays the pipeline driver's role of
// resolving the bundle ahead of report construction.
func bundleFromResources(resources resource.Map) *model.Bundle {
	return &model.Bundle{
		DBSnp:  resources.Record(resource.DBSnp),
		HapMap: resources.Record(resource.HapMap),
		Omni:   resources.Record(resource.Omni),
		Phase1: resources.Record(resource.Phase1),
		Mills:  resources.Record(resource.Mills),
	}
}
