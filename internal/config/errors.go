package config

import "errors"

// Configuration validation errors returned by Config.Validate.
// Package-level sentinels so callers can match with errors.Is.
var (
	// ErrNoPipelineName is returned when the pipeline name is empty.
	// The name appears in every report header and footer.
	ErrNoPipelineName = errors.New("no pipeline name: reports must name the generating pipeline")

	// ErrNoBundleDir is returned when the bundle directory is empty.
	// Without it no archive-backed version can be resolved.
	ErrNoBundleDir = errors.New("no bundle directory: provide the installed package archive directory")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")
)
