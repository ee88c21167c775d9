package model

// PasswordAssessment is the result of scoring a password's strength.
// The password itself is never stored, logged, or echoed back.
type PasswordAssessment struct {
	// Score is the clamped strength score in [0, 100].
	Score int `json:"score"`

	// Tier is the categorical label derived from Score.
	Tier StrengthTier `json:"strength"`

	// Feedback lists remediation advice in rule-evaluation order:
	// length rules first, then character-variety rules, then
	// pattern penalties.
	Feedback []string `json:"feedback"`
}
