// Package model defines the data structures shared between report
// construction and report rendering.
//
// The central type is Context, the per-call bag of resolved version
// strings and file references a report template is rendered with. It
// is deliberately ephemeral: built, rendered, discarded.
package model
