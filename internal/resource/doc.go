// Package resource defines the resource-version map consumed by report
// generation.
//
// A resource map associates enumerated resource keys (tools such as bwa
// or samtools, and reference datasets such as dbSNP) with the files and
// version strings an analysis run was configured with. The map is built
// by the configuration loader and treated as read-only here.
//
// Lookups in this package never fail: missing keys and missing versions
// degrade to the Unknown sentinel so that report generation always
// produces a report, even for partially described runs.
package resource
