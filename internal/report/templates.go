package report

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/seqpilot/runreport/internal/model"
)

// The report templates. Each variant is a fixed narrative: a section
// header, a prose paragraph describing the pipeline steps for that
// analysis, the versions block, and a footer naming the pipeline and
// its source location.
//
// Templates are kept in a table keyed by report kind rather than baked
// into per-variant rendering code, so adding a variant means adding a
// template and a context builder, nothing else.
const (
	rnaTemplate = `==== {{.PipelineName}} run summary: RNA quantification ====

The sequencing reads were aligned to the reference genome with STAR
using the transcript annotation listed below. Alignments were sorted
and indexed with samtools and alignment quality was assessed with
qualimap. Transcript and gene expression levels were quantified with
StringTie.

---- versions of programs and references used ----
{{.PipelineName}} pipeline: {{.PipelineVersion}}
star: {{.STAR}}
samtools: {{.Samtools}}
qualimap: {{.Qualimap}}
stringtie: {{.StringTie}}
reference: {{.Reference}}
transcripts: {{.Transcripts}}
{{if .MaskFile}}mask file: {{.MaskFile}}
{{end}}
This README was generated by the {{.PipelineName}} pipeline.
{{.PipelineSource}}
`

	dnaTemplate = `==== {{.PipelineName}} run summary: DNA variant calling (best practice) ====

The sequencing reads were aligned to the reference genome with bwa and
sorted and indexed with samtools. Alignment quality was assessed with
qualimap. Duplicate reads were marked, indels were realigned around the
known indel resource files listed below, and base quality scores were
recalibrated with GATK. Variants were called following the GATK
best-practice workflow and annotated with snpEff against the dbSNP
build listed below.

---- versions of programs and references used ----
{{.PipelineName}} pipeline: {{.PipelineVersion}}
bwa: {{.BWA}}
samtools: {{.Samtools}}
qualimap: {{.Qualimap}}
gatk: {{.GATK}}
snpEff: {{.SnpEff}}
dbSNP: {{.DBSnp}}
reference: {{.Reference}}
{{range .KnownIndels}}indel resource file: {{.}}
{{end}}
This README was generated by the {{.PipelineName}} pipeline.
{{.PipelineSource}}
`

	ampliconTemplate = `==== {{.PipelineName}} run summary: targeted amplicon panel ====

The sequencing reads were aligned to the reference genome with bwa and
sorted and indexed with samtools. Variants in the targeted regions were
called and filtered with GATK using the reference resource bundle
listed below.

---- versions of programs and references used ----
{{.PipelineName}} pipeline: {{.PipelineVersion}}
bwa: {{.BWA}}
samtools: {{.Samtools}}
gatk: {{.GATK}}
reference: {{.Reference}}
dbsnp: {{.BundleDBSnp}}
hapmap: {{.BundleHapMap}}
omni: {{.BundleOmni}}
1000G phase1: {{.BundlePhase1}}
mills: {{.BundleMills}}

This README was generated by the {{.PipelineName}} pipeline.
{{.PipelineSource}}
`
)

// templates maps each report kind to its parsed template.
var templates = map[model.Kind]*template.Template{
	model.KindRNA:      template.Must(template.New(string(model.KindRNA)).Parse(rnaTemplate)),
	model.KindDNA:      template.Must(template.New(string(model.KindDNA)).Parse(dnaTemplate)),
	model.KindAmplicon: template.Must(template.New(string(model.KindAmplicon)).Parse(ampliconTemplate)),
}

// render executes the template for the context's kind and returns the
// report text. Rendering is deterministic: the same context always
// produces byte-identical output.
func render(ctx *model.Context) (string, error) {
	tmpl, ok := templates[ctx.Kind]
	if !ok {
		return "", fmt.Errorf("unknown report kind: %q", ctx.Kind)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, ctx); err != nil {
		return "", fmt.Errorf("failed to render %s report: %w", ctx.Kind, err)
	}
	return sb.String(), nil
}
