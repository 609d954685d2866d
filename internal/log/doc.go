// Package log provides logging utilities for run-report generation.
//
// The PrivacyHandler wraps any slog.Handler and masks attributes that
// identify samples or study subjects (sample sheet fields, accession
// numbers, index barcodes) before records are emitted. Run logs travel
// further than run data; identifiers must not travel with them.
package log
