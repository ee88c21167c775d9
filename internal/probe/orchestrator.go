package probe

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"footprintscan/internal/config"
	"footprintscan/internal/model"
)

// Orchestrator runs the existence prober over the platform catalog
// for one username.
//
// Probes are independent and share no mutable state, so they execute
// concurrently under a bounded limit; each probe writes to its own
// verdict slot and the merged output always matches catalog order.
// One failing platform never suppresses results for the others: the
// prober converts every failure into a verdict.
type Orchestrator struct {
	// prober performs the per-platform probes.
	prober *Prober

	// entries is the catalog of platform URL templates.
	entries []config.PlatformEntry

	// concurrency bounds the number of in-flight probes.
	concurrency int

	// logger for structured logging.
	logger *slog.Logger
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithCatalog overrides the built-in platform catalog.
// Entry order is probe/output order.
func WithCatalog(entries []config.PlatformEntry) OrchestratorOption {
	return func(o *Orchestrator) {
		if len(entries) > 0 {
			o.entries = entries
		}
	}
}

// WithConcurrency bounds the number of concurrent platform probes.
func WithConcurrency(n int) OrchestratorOption {
	return func(o *Orchestrator) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithOrchestratorLogger sets a custom logger for the orchestrator.
func WithOrchestratorLogger(logger *slog.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// NewOrchestrator creates an Orchestrator around the given prober.
func NewOrchestrator(prober *Prober, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		prober:      prober,
		entries:     defaultCatalog,
		concurrency: config.DefaultProbeConcurrency,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// ScanUsername probes every catalog platform for the username and
// returns one verdict per platform in catalog order.
//
// If the context is cancelled before the batch completes, in-flight
// probes are cancelled cooperatively and no partial results are
// returned; retrying a cancelled scan is the caller's decision.
func (o *Orchestrator) ScanUsername(ctx context.Context, username string) ([]model.ExistenceVerdict, error) {
	targets := CatalogFromEntries(o.entries, username)

	o.logger.Info("starting username scan",
		"username", username,
		"platforms", len(targets),
		"concurrency", o.concurrency,
	)
	start := time.Now()

	// Pre-allocated index slots keep output order equal to catalog
	// order regardless of completion order. No locking is needed:
	// each goroutine owns exactly one slot.
	verdicts := make([]model.ExistenceVerdict, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			verdicts[i] = o.prober.Probe(ctx, target)
			// A probe interrupted mid-flight produced a verdict that
			// reflects the abort, not the platform. Returning the
			// context error discards the whole batch.
			return ctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		// Only cancellation reaches here; probes never return errors.
		return nil, err
	}

	o.logger.Info("username scan complete",
		"username", username,
		"elapsed", time.Since(start),
	)
	return verdicts, nil
}
