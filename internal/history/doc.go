// Package history records generated reports in a SQLite database.
//
// Each saved record notes which report variant was rendered, where it
// was written, and which pipeline version it reported. The history
// command lists these records so operators can see what was summarized
// for past runs. Report generation works identically with or without
// the store.
package history
