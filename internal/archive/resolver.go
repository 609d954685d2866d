package archive

import (
	"archive/zip"
	"bufio"
	"path/filepath"
	"strings"

	"github.com/seqpilot/runreport/internal/resource"
)

// manifestEntry is the archive entry holding the manifest attributes of
// a packaged tool bundle.
const manifestEntry = "META-INF/MANIFEST.MF"

// Lister enumerates the package archives visible to the running process.
//
// The set of installed archives is ambient process state; injecting the
// listing keeps the resolver deterministic and lets tests supply fixture
// archives instead of scanning a real installation.
type Lister func() ([]string, error)

// DirLister returns a Lister that enumerates the .zip and .jar archives
// directly under dir.
func DirLister(dir string) Lister {
	return func() ([]string, error) {
		var paths []string
		for _, pattern := range []string{"*.zip", "*.jar"} {
			matches, err := filepath.Glob(filepath.Join(dir, pattern))
			if err != nil {
				return nil, err
			}
			paths = append(paths, matches...)
		}
		return paths, nil
	}
}

// Extractor pulls a version string out of an opened archive.
// It returns resource.Unknown when the expected entry or attribute is
// missing or malformed.
type Extractor func(r *zip.Reader) string

// Resolver resolves tool versions from installed package archives.
//
// Resolution is best effort: every failure mode (ambiguous match, no
// match, unreadable archive, missing entry) degrades to the Unknown
// sentinel. A report with "Unknown" versions is still a useful report;
// aborting generation over version discovery would not be.
type Resolver struct {
	list Lister
}

// NewResolver creates a Resolver backed by the given Lister.
func NewResolver(list Lister) *Resolver {
	return &Resolver{list: list}
}

// Resolve finds the single archive whose base name satisfies match and
// applies extract to it.
//
// If zero or more than one archive matches, or the archive cannot be
// opened, Resolve returns resource.Unknown. Ambiguity is never resolved
// arbitrarily: picking one of several same-named bundles would report a
// version that may not be the one the run actually used.
func (r *Resolver) Resolve(match func(name string) bool, extract Extractor) string {
	paths, err := r.list()
	if err != nil {
		return resource.Unknown
	}

	var matched string
	count := 0
	for _, p := range paths {
		if match(filepath.Base(p)) {
			matched = p
			count++
		}
	}
	if count != 1 {
		return resource.Unknown
	}

	zr, err := zip.OpenReader(matched)
	if err != nil {
		return resource.Unknown
	}
	defer zr.Close()

	return extract(&zr.Reader)
}

// NamePrefix returns a predicate matching archive base names that start
// with prefix.
func NamePrefix(prefix string) func(string) bool {
	return func(name string) bool {
		return strings.HasPrefix(name, prefix)
	}
}

// NameContains returns a predicate matching archive base names that
// contain sub.
func NameContains(sub string) func(string) bool {
	return func(name string) bool {
		return strings.Contains(name, sub)
	}
}

// ManifestAttribute returns an Extractor that reads the value of the
// named attribute from the archive's META-INF/MANIFEST.MF entry.
// Manifest attributes have the form "Name: value".
func ManifestAttribute(key string) Extractor {
	prefix := key + ":"
	return func(r *zip.Reader) string {
		return scanEntry(r, manifestEntry, prefix, ":")
	}
}

// PropertiesLine returns an Extractor that scans the named text entry
// for the first line starting with prefix, splits it on delimiter, and
// returns the trimmed value portion.
func PropertiesLine(entry, prefix, delimiter string) Extractor {
	return func(r *zip.Reader) string {
		return scanEntry(r, entry, prefix, delimiter)
	}
}

// scanEntry reads the named entry line by line and returns the value
// portion of the first line starting with prefix, split on delimiter.
// Any miss resolves to the Unknown sentinel.
func scanEntry(r *zip.Reader, entry, prefix, delimiter string) string {
	f, err := r.Open(entry)
	if err != nil {
		return resource.Unknown
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		_, value, found := strings.Cut(line, delimiter)
		if !found {
			return resource.Unknown
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return resource.Unknown
		}
		return value
	}
	return resource.Unknown
}
