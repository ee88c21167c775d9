// Package phone implements the phone-number exposure estimator.
//
// The estimator probes a fixed catalog of exposure-source categories
// and emits a finding per category whose stochastic inclusion trial
// succeeds. The sampling thresholds are placeholders for a future
// real phone-intelligence source; the random source is injectable so
// tests are deterministic.
package phone
