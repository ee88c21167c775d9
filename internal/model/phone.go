package model

// ExposureCategory describes one entry of the static phone
// exposure-source catalog.
type ExposureCategory struct {
	// Name is the display name of the source (e.g. "Public Directories").
	Name string `json:"name"`

	// Type is the machine-readable category type
	// (directory, marketing, social, breach).
	Type string `json:"type"`

	// Risk is the fixed risk level findings in this category carry.
	Risk RiskLevel `json:"riskLevel"`
}

// PhoneExposureFinding records that a phone number surfaced in one
// exposure-source category. A finding exists only if the stochastic
// inclusion trial for its category succeeded.
type PhoneExposureFinding struct {
	// Source is the display name of the exposure source.
	Source string `json:"source"`

	// Type is the machine-readable category type.
	Type string `json:"type"`

	// Details is a templated description of the exposure.
	Details string `json:"details"`

	// Risk is the category's fixed risk level.
	Risk RiskLevel `json:"riskLevel"`
}
