package model

import "time"

// BreachRecord describes one disclosed breach affecting an email
// address. Records sourced from the authoritative breach service and
// records produced by the synthetic fallback generator populate the
// same shape; downstream consumers must not need to distinguish
// provenance. The Synthetic flag exists for tests and auditing only
// and is excluded from user-facing rendering.
//
// Invariant: all fields are always populated (empty string/slice, not
// missing) regardless of provenance.
type BreachRecord struct {
	// Name is the machine-readable source name of the breach.
	Name string `json:"name"`

	// Title is the human-readable title of the breach.
	Title string `json:"title"`

	// Domain is the primary domain of the breached service.
	Domain string `json:"domain"`

	// BreachDate is when the breach occurred.
	BreachDate time.Time `json:"breachDate"`

	// AddedDate is when the breach was added to the disclosure service.
	AddedDate time.Time `json:"addedDate"`

	// PwnCount is the number of affected accounts.
	PwnCount int64 `json:"pwnCount"`

	// Description is prose describing the breach.
	Description string `json:"description"`

	// DataClasses lists the categories of exposed data
	// (e.g. "Email addresses", "Passwords").
	DataClasses []string `json:"dataClasses"`

	// IsVerified indicates the breach is confirmed legitimate.
	IsVerified bool `json:"isVerified"`

	// IsFabricated indicates the breach is considered fabricated.
	IsFabricated bool `json:"isFabricated"`

	// IsSensitive indicates the breach exposes sensitive data whose
	// mere association with the address is damaging.
	IsSensitive bool `json:"isSensitive"`

	// IsRetired indicates the breach has been retired from the service.
	IsRetired bool `json:"isRetired"`

	// IsSpamList indicates the record is a spam list rather than a
	// service compromise.
	IsSpamList bool `json:"isSpamList"`

	// Synthetic marks records produced by the fallback generator when
	// the authoritative source was unreachable. Internal only.
	Synthetic bool `json:"-"`
}
