// Package pipeline orchestrates report generation.
//
// A Generator takes a Request (report kind, file references, output
// path), resolves versions through the report renderer, writes the
// report, and optionally records it in the history store. Batch fans
// multiple requests out over an errgroup with a concurrency limit, one
// output file per request.
package pipeline
