// Package archive resolves tool versions from installed package
// archives.
//
// A pipeline installation ships its own code and bundled third-party
// toolkits as zip/jar archives. Each archive embeds its version either
// as a manifest attribute (META-INF/MANIFEST.MF) or as a line in a
// properties text entry. This package locates a uniquely named archive
// among the installed set and extracts that version string.
//
// Resolution never fails: zero matches, multiple matches, unreadable
// archives, and missing entries all degrade to the Unknown sentinel.
// The reports this feeds are informational; a missing version must not
// prevent them from being written.
package archive
