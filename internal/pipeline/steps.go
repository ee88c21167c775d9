package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"footprintscan/internal/advice"
	"footprintscan/internal/breach"
	"footprintscan/internal/config"
	"footprintscan/internal/metadata"
	"footprintscan/internal/model"
	"footprintscan/internal/password"
	"footprintscan/internal/phone"
	"footprintscan/internal/probe"
)

// UsernameStep probes the platform catalog for the report subject.
type UsernameStep struct {
	// orchestrator fans the existence prober out over the catalog.
	orchestrator *probe.Orchestrator
}

// NewUsernameStep creates a username scan step.
func NewUsernameStep(orchestrator *probe.Orchestrator) *UsernameStep {
	return &UsernameStep{orchestrator: orchestrator}
}

// Name returns the step name.
func (s *UsernameStep) Name() string {
	return "username_scan"
}

// Do executes the username scan. Per-platform failures resolve to
// unknown verdicts inside the orchestrator; the only error surfaced
// here is cancellation.
func (s *UsernameStep) Do(ctx context.Context, report *model.FootprintReport) error {
	verdicts, err := s.orchestrator.ScanUsername(ctx, report.Subject)
	if err != nil {
		return err
	}
	report.Verdicts = verdicts
	report.Recommendations = advice.ForUsername(verdicts)
	return nil
}

// EmailStep looks up breach disclosures for the report subject.
type EmailStep struct {
	// client performs the breach lookup with its synthetic fallback.
	client *breach.Client
}

// NewEmailStep creates an email scan step.
func NewEmailStep(client *breach.Client) *EmailStep {
	return &EmailStep{client: client}
}

// Name returns the step name.
func (s *EmailStep) Name() string {
	return "email_scan"
}

// Do executes the breach lookup. Rate limiting is the one condition
// reported distinctly so the caller can back off; every other
// upstream failure already degraded to synthetic records inside the
// client.
func (s *EmailStep) Do(ctx context.Context, report *model.FootprintReport) error {
	records, err := s.client.Lookup(ctx, report.Subject)
	if err != nil {
		if errors.Is(err, breach.ErrRateLimited) {
			report.RateLimited = true
		}
		return err
	}
	report.Breaches = records
	report.Recommendations = advice.ForEmail(records)
	return nil
}

// PhoneStep estimates exposure sources for the report subject.
type PhoneStep struct {
	// estimator performs the per-category inclusion trials.
	estimator *phone.Estimator
}

// NewPhoneStep creates a phone scan step.
func NewPhoneStep(estimator *phone.Estimator) *PhoneStep {
	return &PhoneStep{estimator: estimator}
}

// Name returns the step name.
func (s *PhoneStep) Name() string {
	return "phone_scan"
}

// Do executes the phone exposure estimate.
func (s *PhoneStep) Do(_ context.Context, report *model.FootprintReport) error {
	findings := s.estimator.Scan(report.Subject)
	report.Exposures = findings
	report.Recommendations = advice.ForPhone(findings)
	return nil
}

// PasswordStep scores a password's strength. The password is held
// only for the duration of the step and never written to the report
// subject, logs, or history.
type PasswordStep struct {
	// secret is the password under assessment.
	secret string
}

// NewPasswordStep creates a password assessment step.
func NewPasswordStep(secret string) *PasswordStep {
	return &PasswordStep{secret: secret}
}

// Name returns the step name.
func (s *PasswordStep) Name() string {
	return "password_check"
}

// Do executes the strength assessment.
func (s *PasswordStep) Do(_ context.Context, report *model.FootprintReport) error {
	assessment := password.Score(s.secret)
	report.Password = &assessment
	// Remediation feedback doubles as the advisory list for this
	// category; the recommendation generator has no password branch.
	report.Recommendations = assessment.Feedback
	return nil
}

// MetadataStep inspects a local file for embedded metadata.
type MetadataStep struct {
	// inspector extracts EXIF fields from the file.
	inspector *metadata.Inspector

	// path is the file under inspection.
	path string
}

// NewMetadataStep creates a file metadata step.
func NewMetadataStep(inspector *metadata.Inspector, path string) *MetadataStep {
	return &MetadataStep{inspector: inspector, path: path}
}

// Name returns the step name.
func (s *MetadataStep) Name() string {
	return "metadata_scan"
}

// Do executes the file inspection.
func (s *MetadataStep) Do(_ context.Context, report *model.FootprintReport) error {
	meta, err := s.inspector.InspectFile(s.path)
	if err != nil {
		return fmt.Errorf("metadata scan failed: %w", err)
	}
	report.Metadata = meta
	report.Recommendations = advice.ForMetadata(meta)
	return nil
}

// ForCategory builds the pipeline for one scan invocation. The
// subject argument is the username, email, phone number, password, or
// file path depending on category.
func ForCategory(cfg *config.Config, category model.ScanCategory, subject string, opts ...Option) (*Pipeline, *model.FootprintReport, error) {
	p := New(opts...)

	switch category {
	case model.CategoryUsername:
		prober := probe.NewProber(http.DefaultClient,
			probe.WithProberTimeout(cfg.ProbeTimeout),
			probe.WithProberUserAgent(cfg.BrowserUserAgent),
			probe.WithProberLogger(p.logger),
		)
		orchOpts := []probe.OrchestratorOption{
			probe.WithConcurrency(cfg.ProbeConcurrency),
			probe.WithOrchestratorLogger(p.logger),
		}
		if cfg.File != nil && len(cfg.File.Platforms) > 0 {
			orchOpts = append(orchOpts, probe.WithCatalog(cfg.File.Platforms))
		}
		p.AddSteps(NewUsernameStep(probe.NewOrchestrator(prober, orchOpts...)))
		return p, model.NewFootprintReport(subject, category), nil

	case model.CategoryEmail:
		client := breach.NewClient(http.DefaultClient,
			breach.WithEndpoint(cfg.BreachEndpoint),
			breach.WithAPIKey(cfg.BreachAPIKey),
			breach.WithTimeout(cfg.BreachTimeout),
			breach.WithClientLogger(p.logger),
		)
		p.AddSteps(NewEmailStep(client))
		return p, model.NewFootprintReport(subject, category), nil

	case model.CategoryPhone:
		estimator := phone.NewEstimator(
			phone.WithEstimatorLogger(p.logger),
		)
		p.AddSteps(NewPhoneStep(estimator))
		return p, model.NewFootprintReport(subject, category), nil

	case model.CategoryPassword:
		p.AddSteps(NewPasswordStep(subject))
		// The subject is a secret: the report carries no identifier.
		return p, model.NewFootprintReport("", category), nil

	case model.CategoryMetadata:
		inspector := metadata.NewInspector(
			metadata.WithInspectorLogger(p.logger),
		)
		p.AddSteps(NewMetadataStep(inspector, subject))
		return p, model.NewFootprintReport(subject, category), nil

	default:
		return nil, nil, fmt.Errorf("unknown scan category %q", category)
	}
}
