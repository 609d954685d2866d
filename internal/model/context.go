package model

import "github.com/seqpilot/runreport/internal/resource"

// Kind identifies a report variant.
type Kind string

// Known report variants. Each has its own narrative template and its
// own fixed set of resource keys.
const (
	// KindRNA is the RNA quantification report.
	KindRNA Kind = "rna"

	// KindDNA is the DNA variant-calling best-practice report.
	KindDNA Kind = "dna"

	// KindAmplicon is the targeted amplicon panel report. It is fed by
	// an externally resolved resource Bundle rather than pure map
	// lookups.
	KindAmplicon Kind = "amplicon"
)

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k names a known report variant.
func (k Kind) Valid() bool {
	switch k {
	case KindRNA, KindDNA, KindAmplicon:
		return true
	}
	return false
}

// Context holds the resolved values rendered into a report template.
// It is constructed per report-generation call and discarded after
// rendering; nothing in it is persisted.
type Context struct {
	// Kind selects the template the context is rendered with.
	Kind Kind

	// PipelineName and PipelineSource identify the pipeline in section
	// headers and in the report footer.
	PipelineName   string
	PipelineSource string

	// PipelineVersion is resolved from the pipeline's own distribution
	// bundle, or Unknown.
	PipelineVersion string

	// Tool versions, each the Unknown sentinel when undiscoverable.
	BWA       string
	STAR      string
	Samtools  string
	Qualimap  string
	StringTie string
	SnpEff    string
	GATK      string
	DBSnp     string

	// Reference file names.
	Reference   string
	Transcripts string

	// MaskFile is optional: when empty, the mask-file line is omitted
	// from the rendered report entirely.
	MaskFile string

	// KnownIndels holds the pre-formatted "{file version: v}" entries
	// for the known-indel resource files, in map record order.
	KnownIndels []string

	// Pre-formatted bundle entries for the amplicon variant.
	BundleDBSnp  string
	BundleHapMap string
	BundleOmni   string
	BundlePhase1 string
	BundleMills  string
}

// Bundle is an externally resolved set of version-bearing reference
// resources used by the targeted amplicon panel report. The caller
// (the pipeline driver's resource loader) resolves these ahead of time
// instead of routing them through the resource map.
type Bundle struct {
	DBSnp  resource.Record
	HapMap resource.Record
	Omni   resource.Record
	Phase1 resource.Record
	Mills  resource.Record
}
