package archive

import "strings"

// Archive naming and entry conventions for the two bundles the reports
// need versions from.
const (
	// pipelineArchivePrefix identifies the pipeline's own distribution
	// bundle, e.g. "seqpilot-1.4.2.jar".
	pipelineArchivePrefix = "seqpilot"

	// implementationVersionKey is the manifest attribute carrying the
	// bundle version.
	implementationVersionKey = "Implementation-Version"

	// GATK bundles have shipped under two naming schemes,
	// "GenomeAnalysisTK.jar" and "gatk-<version>.jar". Both are
	// matched, case-insensitively.
	gatkArchiveSubstring  = "gatk"
	gatkArchiveLegacyName = "genomeanalysistk"

	// gatkPropertiesEntry is the text entry inside the GATK bundle that
	// records its version as a "version=<value>" line.
	gatkPropertiesEntry = "about.properties"
	gatkVersionPrefix   = "version"
)

// PipelineVersion resolves the version of the pipeline's own
// distribution bundle from its manifest, or Unknown.
func (r *Resolver) PipelineVersion() string {
	return r.Resolve(NamePrefix(pipelineArchivePrefix), ManifestAttribute(implementationVersionKey))
}

// GATKVersion resolves the version of the GATK toolkit bundle from its
// properties entry, or Unknown.
func (r *Resolver) GATKVersion() string {
	match := func(name string) bool {
		lower := strings.ToLower(name)
		return strings.Contains(lower, gatkArchiveSubstring) ||
			strings.Contains(lower, gatkArchiveLegacyName)
	}
	return r.Resolve(match, PropertiesLine(gatkPropertiesEntry, gatkVersionPrefix, "="))
}
