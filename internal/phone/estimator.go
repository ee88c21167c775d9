package phone

import (
	"log/slog"
	"math/rand"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"footprintscan/internal/config"
	"footprintscan/internal/model"
)

// exposureCatalog is the fixed, ordered catalog of exposure-source
// categories probed on every phone scan. Catalog order is output order.
var exposureCatalog = []model.ExposureCategory{
	{Name: "Public Directories", Type: "directory", Risk: model.RiskLow},
	{Name: "Marketing Lists", Type: "marketing", Risk: model.RiskMedium},
	{Name: "Social Media", Type: "social", Risk: model.RiskMedium},
	{Name: "Data Breaches", Type: "breach", Risk: model.RiskHigh},
}

// lowerCaser renders category names in sentence position for the
// templated detail strings.
var lowerCaser = cases.Lower(language.English)

// Estimator estimates where a phone number is publicly exposed.
//
// Each category undergoes an independent inclusion trial; a finding
// exists only if its trial succeeds, so the returned sequence may be
// empty.
type Estimator struct {
	// random returns a value in [0, 1) for the inclusion trials.
	random func() float64

	// probability is the per-category inclusion probability.
	probability float64

	// logger for structured logging.
	logger *slog.Logger
}

// EstimatorOption configures an Estimator.
type EstimatorOption func(*Estimator)

// WithRandomSource injects the random source used for inclusion
// trials. Tests inject a deterministic source.
func WithRandomSource(random func() float64) EstimatorOption {
	return func(e *Estimator) {
		if random != nil {
			e.random = random
		}
	}
}

// WithProbability sets the per-category inclusion probability.
func WithProbability(p float64) EstimatorOption {
	return func(e *Estimator) {
		e.probability = p
	}
}

// WithEstimatorLogger sets a custom logger for the estimator.
func WithEstimatorLogger(logger *slog.Logger) EstimatorOption {
	return func(e *Estimator) {
		e.logger = logger
	}
}

// NewEstimator creates an Estimator with the default random source.
func NewEstimator(opts ...EstimatorOption) *Estimator {
	e := &Estimator{
		random:      rand.Float64,
		probability: config.DefaultPhoneExposureProbability,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Normalize strips a raw phone string down to digits and a leading
// plus sign. The normalized form is not yet consumed by the scoring
// logic but must be computed for forward compatibility with real
// lookup sources.
func Normalize(raw string) string {
	// Leading means leading in the result: formatting noise before the
	// plus sign ("  +1...") must not drop it.
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && b.Len() == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Scan returns the exposure findings for a raw phone string, ordered
// by catalog position.
func (e *Estimator) Scan(raw string) []model.PhoneExposureFinding {
	normalized := Normalize(raw)
	e.logger.Debug("scanning phone exposure",
		"digits", len(normalized),
	)

	findings := []model.PhoneExposureFinding{}
	for _, category := range exposureCatalog {
		if e.random() >= e.probability {
			continue
		}
		findings = append(findings, model.PhoneExposureFinding{
			Source:  category.Name,
			Type:    category.Type,
			Details: "Phone number found in " + lowerCaser.String(category.Name),
			Risk:    category.Risk,
		})
	}
	return findings
}

// Catalog returns the fixed exposure-source catalog.
func Catalog() []model.ExposureCategory {
	out := make([]model.ExposureCategory, len(exposureCatalog))
	copy(out, exposureCatalog)
	return out
}
