package phone

import (
	"io"
	"log/slog"
	"testing"

	"footprintscan/internal/model"
)

// discardLogger returns a logger for tests that drops all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedRandom returns a random source that always yields v.
func fixedRandom(v float64) func() float64 {
	return func() float64 { return v }
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "digits only", raw: "5551234567", want: "5551234567"},
		{name: "formatted us number", raw: "(555) 123-4567", want: "5551234567"},
		{name: "international prefix", raw: "+81-90-1234-5678", want: "+819012345678"},
		{name: "whitespace before plus", raw: "  +1 555 123 4567", want: "+15551234567"},
		{name: "plus after digits dropped", raw: "555+1234", want: "5551234"},
		{name: "repeated plus keeps first", raw: "++15551234", want: "+15551234"},
		{name: "letters dropped", raw: "555-CALL-NOW", want: "555"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Normalize(tc.raw); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestEstimator_Scan(t *testing.T) {
	t.Parallel()

	t.Run("all trials win", func(t *testing.T) {
		t.Parallel()

		e := NewEstimator(
			WithRandomSource(fixedRandom(0.0)),
			WithEstimatorLogger(discardLogger()),
		)
		findings := e.Scan("+15551234567")

		if len(findings) != 4 {
			t.Fatalf("got %d findings, want 4", len(findings))
		}

		// Findings come out in catalog order.
		wantSources := []string{"Public Directories", "Marketing Lists", "Social Media", "Data Breaches"}
		for i, want := range wantSources {
			if findings[i].Source != want {
				t.Errorf("findings[%d].Source = %q, want %q", i, findings[i].Source, want)
			}
		}

		if findings[0].Details != "Phone number found in public directories" {
			t.Errorf("details = %q, want lowercased category name", findings[0].Details)
		}
		if findings[3].Risk != model.RiskHigh {
			t.Errorf("data breach risk = %v, want %v", findings[3].Risk, model.RiskHigh)
		}
	})

	t.Run("all trials lose", func(t *testing.T) {
		t.Parallel()

		e := NewEstimator(
			WithRandomSource(fixedRandom(0.99)),
			WithEstimatorLogger(discardLogger()),
		)
		findings := e.Scan("+15551234567")

		if findings == nil {
			t.Fatal("expected empty slice, got nil")
		}
		if len(findings) != 0 {
			t.Errorf("got %d findings, want 0", len(findings))
		}
	})

	t.Run("trial boundary", func(t *testing.T) {
		t.Parallel()

		// random() == probability loses the trial.
		e := NewEstimator(
			WithRandomSource(fixedRandom(0.4)),
			WithProbability(0.4),
			WithEstimatorLogger(discardLogger()),
		)
		if findings := e.Scan("5551234567"); len(findings) != 0 {
			t.Errorf("got %d findings at boundary, want 0", len(findings))
		}
	})
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	catalog := Catalog()
	if len(catalog) != 4 {
		t.Fatalf("got %d categories, want 4", len(catalog))
	}

	// Mutating the returned slice must not affect the estimator.
	catalog[0].Name = "mutated"
	if Catalog()[0].Name != "Public Directories" {
		t.Error("Catalog() returned a shared slice")
	}
}
