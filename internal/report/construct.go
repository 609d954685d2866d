package report

import (
	"fmt"
	"os"

	"github.com/seqpilot/runreport/internal/archive"
	"github.com/seqpilot/runreport/internal/model"
	"github.com/seqpilot/runreport/internal/resource"
)

// Renderer constructs run-summary READMEs.
//
// A Renderer holds no per-report state: each Construct call resolves
// its own versions, builds an ephemeral context, renders it, and writes
// the result. Concurrent calls are safe as long as they target distinct
// output files, since archives are opened and closed within each call.
type Renderer struct {
	resolver       *archive.Resolver
	pipelineName   string
	pipelineSource string
}

// NewRenderer creates a Renderer. The pipeline name and source URL
// appear in the report header and footer.
func NewRenderer(resolver *archive.Resolver, pipelineName, pipelineSource string) *Renderer {
	return &Renderer{
		resolver:       resolver,
		pipelineName:   pipelineName,
		pipelineSource: pipelineSource,
	}
}

// ConstructRNAReport writes the RNA quantification README to outputFile
// and returns its path. maskFile is optional; when empty, the mask-file
// line is omitted from the report.
func (r *Renderer) ConstructRNAReport(resources resource.Map, reference, transcripts, maskFile, outputFile string) (string, error) {
	return r.Write(r.RNAContext(resources, reference, transcripts, maskFile), outputFile)
}

// ConstructDNAReport writes the DNA variant-calling best-practice
// README to outputFile and returns its path.
func (r *Renderer) ConstructDNAReport(resources resource.Map, reference, outputFile string) (string, error) {
	return r.Write(r.DNAContext(resources, reference), outputFile)
}

// ConstructAmpliconReport writes the targeted amplicon panel README to
// outputFile and returns its path. The reference resource bundle is
// resolved by the caller rather than looked up from the resource map.
func (r *Renderer) ConstructAmpliconReport(resources resource.Map, bundle *model.Bundle, reference, outputFile string) (string, error) {
	return r.Write(r.AmpliconContext(resources, bundle, reference), outputFile)
}

// RNAContext builds the template context for the RNA quantification
// report.
func (r *Renderer) RNAContext(resources resource.Map, reference, transcripts, maskFile string) *model.Context {
	ctx := r.baseContext(model.KindRNA)
	ctx.STAR = resources.Version(resource.STAR)
	ctx.Samtools = resources.Version(resource.Samtools)
	ctx.Qualimap = resources.Version(resource.Qualimap)
	ctx.StringTie = resources.Version(resource.StringTie)
	ctx.Reference = reference
	ctx.Transcripts = transcripts
	ctx.MaskFile = maskFile
	return ctx
}

// DNAContext builds the template context for the DNA variant-calling
// best-practice report.
func (r *Renderer) DNAContext(resources resource.Map, reference string) *model.Context {
	ctx := r.baseContext(model.KindDNA)
	ctx.BWA = resources.Version(resource.BWA)
	ctx.Samtools = resources.Version(resource.Samtools)
	ctx.Qualimap = resources.Version(resource.Qualimap)
	ctx.SnpEff = resources.Version(resource.SnpEff)
	ctx.DBSnp = resources.Version(resource.DBSnp)
	ctx.GATK = r.resolver.GATKVersion()
	ctx.Reference = reference
	ctx.KnownIndels = resources.Formatted(resource.KnownIndels)
	return ctx
}

// AmpliconContext builds the template context for the targeted amplicon
// panel report.
func (r *Renderer) AmpliconContext(resources resource.Map, bundle *model.Bundle, reference string) *model.Context {
	ctx := r.baseContext(model.KindAmplicon)
	ctx.BWA = resources.Version(resource.BWA)
	ctx.Samtools = resources.Version(resource.Samtools)
	ctx.GATK = r.resolver.GATKVersion()
	ctx.Reference = reference
	ctx.BundleDBSnp = bundle.DBSnp.Format()
	ctx.BundleHapMap = bundle.HapMap.Format()
	ctx.BundleOmni = bundle.Omni.Format()
	ctx.BundlePhase1 = bundle.Phase1.Format()
	ctx.BundleMills = bundle.Mills.Format()
	return ctx
}

// baseContext builds a context with the fields every variant shares.
func (r *Renderer) baseContext(kind model.Kind) *model.Context {
	return &model.Context{
		Kind:            kind,
		PipelineName:    r.pipelineName,
		PipelineSource:  r.pipelineSource,
		PipelineVersion: r.resolver.PipelineVersion(),
	}
}

// Write renders ctx and persists it to outputFile, creating or
// truncating the file. A write failure is the one fatal error class in
// report generation: a report that cannot be written has no partial
// value, so the error surfaces to the caller.
func (r *Renderer) Write(ctx *model.Context, outputFile string) (string, error) {
	text, err := render(ctx)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(outputFile, []byte(text), 0600); err != nil {
		return "", fmt.Errorf("failed to write report to %s: %w", outputFile, err)
	}
	return outputFile, nil
}
