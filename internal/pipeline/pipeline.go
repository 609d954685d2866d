package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/seqpilot/runreport/internal/history"
	"github.com/seqpilot/runreport/internal/model"
	"github.com/seqpilot/runreport/internal/report"
	"github.com/seqpilot/runreport/internal/resource"
)

// Request validation errors.
var (
	// ErrUnknownKind is returned for a request naming no known report
	// variant.
	ErrUnknownKind = errors.New("unknown report kind")

	// ErrNoOutputFile is returned when the request has no output path.
	ErrNoOutputFile = errors.New("no output file specified")

	// ErrNoBundle is returned for an amplicon request without a
	// resolved resource bundle.
	ErrNoBundle = errors.New("amplicon report requires a resource bundle")
)

// Request describes one report to generate.
type Request struct {
	// Kind selects the report variant.
	Kind model.Kind

	// Reference is the reference genome file name.
	Reference string

	// Transcripts is the transcript annotation file; RNA reports only.
	Transcripts string

	// MaskFile is the optional mask file; RNA reports only. When empty
	// the mask-file line is omitted from the report.
	MaskFile string

	// Bundle is the externally resolved reference resource bundle;
	// amplicon reports only.
	Bundle *model.Bundle

	// OutputFile is where the rendered report is written.
	OutputFile string
}

// Validate checks that the request can be rendered.
func (r *Request) Validate() error {
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind)
	}
	if r.OutputFile == "" {
		return ErrNoOutputFile
	}
	if r.Kind == model.KindAmplicon && r.Bundle == nil {
		return ErrNoBundle
	}
	return nil
}

// Generator runs one report generation end to end: resolve versions,
// build the template context, render, write, and optionally record the
// report in the history store.
//
// A Generator holds no per-request state and may be shared by
// concurrent requests targeting distinct output files.
type Generator struct {
	renderer  *report.Renderer
	resources resource.Map

	// store is optional; when nil, generated reports are not recorded.
	store *history.Store

	// markdown switches output to the Markdown rendition instead of
	// the canonical plain-text README.
	markdown bool

	logger *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithHistory records every generated report in the given store.
func WithHistory(store *history.Store) GeneratorOption {
	return func(g *Generator) {
		g.store = store
	}
}

// WithMarkdown switches the generator to the Markdown rendition.
func WithMarkdown(markdown bool) GeneratorOption {
	return func(g *Generator) {
		g.markdown = markdown
	}
}

// WithLogger sets a custom logger for the generator.
func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a Generator over the given renderer and
// resource map.
func NewGenerator(renderer *report.Renderer, resources resource.Map, opts ...GeneratorOption) *Generator {
	g := &Generator{
		renderer:  renderer,
		resources: resources,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Run generates the requested report and returns the output path.
// History recording failures are logged, not returned: the report was
// written, and that is the operation's value.
func (g *Generator) Run(ctx context.Context, req *Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rctx := g.contextFor(req)
	path, err := g.write(rctx, req.OutputFile)
	if err != nil {
		return "", err
	}

	g.logger.Info("report generated",
		"kind", req.Kind.String(),
		"output", path,
		"pipelineVersion", rctx.PipelineVersion)

	if g.store != nil {
		rec := &history.Record{
			Kind:            req.Kind,
			OutputPath:      path,
			PipelineVersion: rctx.PipelineVersion,
		}
		if _, err := g.store.Save(ctx, rec); err != nil {
			g.logger.Warn("failed to record report in history", "error", err)
		}
	}

	return path, nil
}

// write persists the rendered context, in Markdown when configured and
// as the canonical plain-text README otherwise.
func (g *Generator) write(rctx *model.Context, outputFile string) (string, error) {
	if !g.markdown {
		return g.renderer.Write(rctx, outputFile)
	}

	f, err := os.Create(outputFile) //nolint:gosec // Caller-specified report output path
	if err != nil {
		return "", fmt.Errorf("failed to write report to %s: %w", outputFile, err)
	}
	w := report.NewMarkdownWriter(f)
	if _, err := w.Write(rctx); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write report to %s: %w", outputFile, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write report to %s: %w", outputFile, err)
	}
	return outputFile, nil
}

// contextFor builds the template context for a validated request.
func (g *Generator) contextFor(req *Request) *model.Context {
	switch req.Kind {
	case model.KindRNA:
		return g.renderer.RNAContext(g.resources, req.Reference, req.Transcripts, req.MaskFile)
	case model.KindAmplicon:
		return g.renderer.AmpliconContext(g.resources, req.Bundle, req.Reference)
	default:
		return g.renderer.DNAContext(g.resources, req.Reference)
	}
}
