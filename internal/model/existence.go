package model

// Existence is the tri-state outcome of a profile existence probe.
//
// A dedicated enum is used instead of a nullable bool so that the
// indeterminate state is a compile-time-checked case everywhere it is
// consumed. Absence of a profile is the only strong negative signal
// most platforms give us; everything else collapses into Unknown.
type Existence int

const (
	// ExistenceUnknown indicates the probe could not establish whether
	// the profile exists (ambiguous HTTP status, network failure, or an
	// API error that is not a confident "not found").
	ExistenceUnknown Existence = iota

	// ExistenceConfirmed indicates the platform responded with a
	// definitive positive signal (HTTP 200 on the profile or API URL).
	ExistenceConfirmed

	// ExistenceAbsent indicates the platform responded with a
	// definitive negative signal (HTTP 404).
	ExistenceAbsent
)

// String returns a human-readable representation of the existence state.
func (e Existence) String() string {
	switch e {
	case ExistenceConfirmed:
		return "exists"
	case ExistenceAbsent:
		return "not_found"
	case ExistenceUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// IsValid returns true if this is a known existence state.
func (e Existence) IsValid() bool {
	switch e {
	case ExistenceUnknown, ExistenceConfirmed, ExistenceAbsent:
		return true
	default:
		return false
	}
}

// MarshalJSON encodes the existence state as its string form so that
// persisted reports and JSON output stay readable and stable.
func (e Existence) MarshalJSON() ([]byte, error) {
	return []byte(`"` + e.String() + `"`), nil
}

// UnmarshalJSON decodes the string form produced by MarshalJSON.
// Unrecognized values decode to ExistenceUnknown rather than failing,
// so old reports remain loadable.
func (e *Existence) UnmarshalJSON(data []byte) error {
	*e = ParseExistence(string(data))
	return nil
}

// ParseExistence converts a string to an Existence state.
// The input may be quoted (as in raw JSON).
func ParseExistence(s string) Existence {
	switch trimQuotes(s) {
	case "exists":
		return ExistenceConfirmed
	case "not_found":
		return ExistenceAbsent
	default:
		return ExistenceUnknown
	}
}

// trimQuotes removes a single pair of surrounding double quotes.
func trimQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
