// Package report renders run-summary READMEs for completed analysis
// runs.
//
// Each report variant (RNA quantification, DNA variant calling,
// targeted amplicon panel) is a fixed narrative template with a fixed
// set of version substitutions. The Renderer resolves versions from
// the resource map and from installed package archives, builds an
// ephemeral template context, and writes the rendered text to the
// caller-specified output file.
//
// Two output formats exist: the canonical plain-text README written
// next to a run's results (TextWriter) and a Markdown rendition for
// sharing (MarkdownWriter). Version-resolution misses never fail a
// render; only output write failures surface as errors.
package report
