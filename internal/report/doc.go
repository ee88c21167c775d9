// Package report renders footprint scan results. Writers exist for
// human-readable text (terminal display), JSON (machine consumption),
// and GitHub Flavored Markdown (documentation and sharing).
package report
