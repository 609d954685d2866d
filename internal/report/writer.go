package report

import (
	"io"

	"github.com/seqpilot/runreport/internal/model"
)

// Writer defines the interface for report output.
// Implementations render a report context in a particular format and
// write it to their configured destination.
type Writer interface {
	// Write renders the report context and writes it out.
	// Returns the number of bytes written and any error encountered.
	Write(ctx *model.Context) (int, error)
}

// TextWriter outputs the canonical plain-text README report.
// This is the format written next to a run's result files; its exact
// byte layout is relied on by downstream consumers and must stay
// stable across releases.
type TextWriter struct {
	output io.Writer
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{output: output}
}

// Write renders the context with its kind's template and writes the
// result to the output.
func (w *TextWriter) Write(ctx *model.Context) (int, error) {
	text, err := render(ctx)
	if err != nil {
		return 0, err
	}
	return w.output.Write([]byte(text))
}
