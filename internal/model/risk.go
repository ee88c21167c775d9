package model

// RiskLevel represents the coarse risk of a single exposure finding
// or of an aggregate scan result.
type RiskLevel int

const (
	// RiskLow indicates minor exposure with limited impact.
	// Example: a phone number listed in a public directory.
	RiskLow RiskLevel = iota

	// RiskMedium indicates moderate exposure that warrants attention.
	// Example: presence on marketing lists or social media scrapes.
	RiskMedium

	// RiskHigh indicates serious exposure.
	// Example: appearance in breach databases.
	RiskHigh
)

// String returns a human-readable representation of the risk level.
func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	default:
		return "unknown"
	}
}

// IsValid returns true if this is a known risk level.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	default:
		return false
	}
}

// MarshalJSON encodes the risk level as its string form.
func (r RiskLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// UnmarshalJSON decodes the string form produced by MarshalJSON.
func (r *RiskLevel) UnmarshalJSON(data []byte) error {
	*r = ParseRiskLevel(trimQuotes(string(data)))
	return nil
}

// ParseRiskLevel converts a string to a RiskLevel.
// Unrecognized values map to RiskLow.
func ParseRiskLevel(s string) RiskLevel {
	switch s {
	case "high":
		return RiskHigh
	case "medium":
		return RiskMedium
	default:
		return RiskLow
	}
}

// StrengthTier is the categorical label derived from a password
// strength score via fixed thresholds.
type StrengthTier string

// Strength tier constants, ordered weakest to strongest.
const (
	// TierWeak covers scores below 40.
	TierWeak StrengthTier = "Weak"
	// TierFair covers scores in [40, 60).
	TierFair StrengthTier = "Fair"
	// TierGood covers scores in [60, 80).
	TierGood StrengthTier = "Good"
	// TierStrong covers scores of 80 and above.
	TierStrong StrengthTier = "Strong"
)

// String returns the tier label.
func (t StrengthTier) String() string {
	return string(t)
}

// TierForScore maps a clamped strength score to its tier.
// Thresholds: >=80 Strong, >=60 Good, >=40 Fair, else Weak.
func TierForScore(score int) StrengthTier {
	switch {
	case score >= 80:
		return TierStrong
	case score >= 60:
		return TierGood
	case score >= 40:
		return TierFair
	default:
		return TierWeak
	}
}
