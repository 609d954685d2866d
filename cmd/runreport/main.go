// Package main provides the entry point for the runreport CLI.
//
// runreport generates human-readable README reports summarizing which
// pipeline version and tool/reference versions were used for a
// genomics analysis run.
//
// Usage:
//
//	runreport render --kind dna --reference hg19.fa --output README.txt
//	runreport history
//
// See --help for all available options.
package main

// main is the entry point for runreport.
func main() {
	Execute()
}
