// Package main provides the entry point for the footprintscan CLI.
//
// Footprintscan audits the digital footprint of an identifier. It
// probes social platforms for username presence, looks up email
// breach disclosures, estimates phone number exposure, scores
// password strength, and inspects local files for identifying
// metadata.
//
// Usage:
//
//	footprintscan scan username <name>
//	footprintscan scan email <address>
//
// See --help for all available options.
package main

// main is the entry point for footprintscan.
func main() {
	Execute()
}
