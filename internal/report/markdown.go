package report

import (
	"io"

	"github.com/nao1215/markdown"
	"github.com/seqpilot/runreport/internal/model"
)

// MarkdownWriter outputs the run summary in Markdown format.
// This rendition is meant for project wikis and pull-request comments;
// the plain-text TextWriter remains the canonical README format.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write renders the context as Markdown and writes it to the output.
func (w *MarkdownWriter) Write(ctx *model.Context) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(ctx.PipelineName + " run summary")
	md.H2(variantTitle(ctx.Kind))
	md.PlainText("")

	md.H3("Versions of programs and references used")
	md.Table(markdown.TableSet{
		Header: []string{"Program / reference", "Version"},
		Rows:   versionRows(ctx),
	})
	md.PlainText("")

	md.PlainText("Generated by the " + ctx.PipelineName + " pipeline.")
	md.PlainText(ctx.PipelineSource)

	return len(md.String()), md.Build()
}

// variantTitle returns the human-readable section title for a report kind.
func variantTitle(kind model.Kind) string {
	switch kind {
	case model.KindRNA:
		return "RNA quantification"
	case model.KindDNA:
		return "DNA variant calling (best practice)"
	case model.KindAmplicon:
		return "Targeted amplicon panel"
	default:
		return string(kind)
	}
}

// versionRows returns the versions-block table rows for the context's
// kind. Row sets mirror the fixed key lists of the text templates.
func versionRows(ctx *model.Context) [][]string {
	rows := [][]string{
		{ctx.PipelineName + " pipeline", ctx.PipelineVersion},
	}

	switch ctx.Kind {
	case model.KindRNA:
		rows = append(rows,
			[]string{"star", ctx.STAR},
			[]string{"samtools", ctx.Samtools},
			[]string{"qualimap", ctx.Qualimap},
			[]string{"stringtie", ctx.StringTie},
			[]string{"reference", ctx.Reference},
			[]string{"transcripts", ctx.Transcripts},
		)
		if ctx.MaskFile != "" {
			rows = append(rows, []string{"mask file", ctx.MaskFile})
		}
	case model.KindDNA:
		rows = append(rows,
			[]string{"bwa", ctx.BWA},
			[]string{"samtools", ctx.Samtools},
			[]string{"qualimap", ctx.Qualimap},
			[]string{"gatk", ctx.GATK},
			[]string{"snpEff", ctx.SnpEff},
			[]string{"dbSNP", ctx.DBSnp},
			[]string{"reference", ctx.Reference},
		)
		for _, indel := range ctx.KnownIndels {
			rows = append(rows, []string{"indel resource file", indel})
		}
	case model.KindAmplicon:
		rows = append(rows,
			[]string{"bwa", ctx.BWA},
			[]string{"samtools", ctx.Samtools},
			[]string{"gatk", ctx.GATK},
			[]string{"reference", ctx.Reference},
			[]string{"dbsnp", ctx.BundleDBSnp},
			[]string{"hapmap", ctx.BundleHapMap},
			[]string{"omni", ctx.BundleOmni},
			[]string{"1000G phase1", ctx.BundlePhase1},
			[]string{"mills", ctx.BundleMills},
		)
	}
	return rows
}
