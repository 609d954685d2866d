// Package config holds the configuration for report generation.
//
// Two concerns live here: the Config struct populated from CLI flags
// (bundle directory, pipeline identity, output options) and the loader
// for the resource-version configuration file, a YAML document mapping
// resource keys to the file/version records an analysis run was
// configured with.
//
// The resource map built here is the read-only input to all report
// lookups; this package is the only place it is constructed.
package config
