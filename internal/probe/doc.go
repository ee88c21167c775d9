// Package probe implements the platform existence prober and the
// concurrent scan orchestrator.
//
// A probe answers one question for one platform: does a public profile
// exist for this username? The answer is tri-state. Platforms with a
// dedicated API endpoint give richer answers (bio, karma); platforms
// without one are probed by fetching the public profile URL and
// interpreting only 200 and 404 as meaningful.
//
// The orchestrator fans the prober out over the fixed platform catalog
// under a bounded concurrency limit and merges verdicts back into
// catalog order, so output ordering never depends on completion time.
package probe
