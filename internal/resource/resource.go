package resource

import "fmt"

// Unknown is the sentinel version string used whenever a version cannot
// be determined. Version discovery is best effort: a missing resource,
// an ambiguous archive, or an absent version field all degrade to this
// value instead of failing report generation.
const Unknown = "Unknown"

// Key identifies a tool or reference dataset in the resource map.
// Keys match the names used in the resources configuration file.
type Key string

// Resource keys referenced by the report templates.
const (
	// Alignment and processing tools.
	BWA       Key = "bwa"
	STAR      Key = "star"
	Samtools  Key = "samtools"
	Qualimap  Key = "qualimap"
	StringTie Key = "stringtie"
	SnpEff    Key = "snpEff"

	// Reference datasets.
	DBSnp       Key = "dbSNP"
	Reference   Key = "reference"
	Transcripts Key = "transcripts"
	MaskFile    Key = "maskFile"

	// KnownIndels is a multi-file key: it may map to any number of
	// known-indel VCF records, including none.
	KnownIndels Key = "knownIndels"

	// Bundle keys for the targeted amplicon panel report.
	HapMap Key = "hapmap"
	Omni   Key = "omni"
	Phase1 Key = "phase1"
	Mills  Key = "mills"
)

// Record associates a resource file with the version it was shipped at.
// Version is empty when no version could be discovered for the file;
// lookups render such records with the Unknown sentinel.
type Record struct {
	// File is the file name or path of the resource.
	File string

	// Version is the version string of the resource, if known.
	Version string
}

// Format renders the record as "{file version: version}", with Unknown
// standing in for a record without a version.
func (r Record) Format() string {
	version := r.Version
	if version == "" {
		version = Unknown
	}
	return fmt.Sprintf("{%s version: %s}", r.File, version)
}

// Map associates resource keys with their file/version records.
// It is built once by the configuration loader before any report is
// generated and is read-only from this package's perspective.
//
// Singular resources (samtools, dbSNP, ...) hold exactly one record.
// Multi-file resources (knownIndels) hold zero or more records; record
// order within a key is preserved from the configuration file.
type Map map[Key][]Record

// Version returns the version string of the single record for key.
// It returns Unknown when the key is absent, has no records, or the
// record carries no version. It never fails: a lookup miss is an
// expected condition, not an error.
func (m Map) Version(key Key) string {
	records, ok := m[key]
	if !ok || len(records) == 0 {
		return Unknown
	}
	if records[0].Version == "" {
		return Unknown
	}
	return records[0].Version
}

// File returns the file name of the single record for key, or the
// empty string when the key is absent.
func (m Map) File(key Key) string {
	records, ok := m[key]
	if !ok || len(records) == 0 {
		return ""
	}
	return records[0].File
}

// Record returns the single record for key, or the zero Record when
// the key is absent.
func (m Map) Record(key Key) Record {
	records, ok := m[key]
	if !ok || len(records) == 0 {
		return Record{}
	}
	return records[0]
}

// Formatted returns every record for key rendered as
// "{file version: version}", with Unknown standing in for records
// without a version. Record order is preserved. A key miss yields an
// empty slice.
func (m Map) Formatted(key Key) []string {
	records := m[key]
	formatted := make([]string, 0, len(records))
	for _, r := range records {
		formatted = append(formatted, r.Format())
	}
	return formatted
}
