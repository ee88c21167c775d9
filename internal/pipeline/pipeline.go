package pipeline

import (
	"context"
	"log/slog"

	"footprintscan/internal/model"
)

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence against the same report.
//
// Non-critical failures (an unreachable platform, a degraded breach
// source) are recorded in the report as data and return nil; only
// failures the caller must act on (rate limiting, cancellation) are
// returned as errors.
type Step interface {
	// Do executes the pipeline step, modifying the report in place.
	Do(ctx context.Context, report *model.FootprintReport) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline executes a list of steps in order against one report.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{steps: make([]Step, 0)}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddSteps appends steps to the pipeline. Steps execute in the order
// they are added.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}

// Execute runs all pipeline steps in sequence. Cancellation is
// checked before each step; steps handle their own timeouts. The
// first step error stops execution and is returned.
func (p *Pipeline) Execute(ctx context.Context, report *model.FootprintReport) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step", "step", step.Name())

		if err := p.executeStep(ctx, step, report); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"error", err,
			)
			return err
		}
	}
	return nil
}

// executeStep runs one step and finalizes the report sections it owns.
func (p *Pipeline) executeStep(ctx context.Context, step Step, report *model.FootprintReport) error {
	if err := step.Do(ctx, report); err != nil {
		return err
	}
	report.Risk = report.AggregateRisk()
	return nil
}
