package model

import "time"

// ScanCategory identifies one kind of footprint scan.
type ScanCategory string

// Scan category constants.
const (
	// CategoryUnknown represents an unrecognized category.
	CategoryUnknown ScanCategory = ""
	// CategoryUsername is a cross-platform username presence scan.
	CategoryUsername ScanCategory = "username"
	// CategoryEmail is a breach-disclosure scan for an email address.
	CategoryEmail ScanCategory = "email"
	// CategoryPhone is a phone-number exposure scan.
	CategoryPhone ScanCategory = "phone"
	// CategoryPassword is a password strength assessment.
	CategoryPassword ScanCategory = "password"
	// CategoryMetadata is a local-file metadata inspection.
	CategoryMetadata ScanCategory = "metadata"
)

// String returns the string representation of the scan category.
func (c ScanCategory) String() string {
	if c == CategoryUnknown {
		return "unknown"
	}
	return string(c)
}

// IsValid returns true if this is a known scan category.
func (c ScanCategory) IsValid() bool {
	switch c {
	case CategoryUsername, CategoryEmail, CategoryPhone,
		CategoryPassword, CategoryMetadata:
		return true
	default:
		return false
	}
}

// ParseScanCategory converts a string to a ScanCategory.
func ParseScanCategory(s string) ScanCategory {
	switch s {
	case "username":
		return CategoryUsername
	case "email":
		return CategoryEmail
	case "phone":
		return CategoryPhone
	case "password":
		return CategoryPassword
	case "metadata":
		return CategoryMetadata
	default:
		return CategoryUnknown
	}
}

// FileMetadata is the payload of a local-file metadata inspection.
// It feeds the metadata branch of the recommendation generator.
type FileMetadata struct {
	// Path is the inspected file path.
	Path string `json:"path"`

	// HasLocation indicates GPS coordinates were found in the file.
	HasLocation bool `json:"hasLocation"`

	// Location is a human-readable coordinate string when present.
	Location string `json:"location,omitempty"`

	// HasDeviceInfo indicates camera/device fields were found.
	HasDeviceInfo bool `json:"hasDeviceInfo"`

	// DeviceInfo summarizes make/model/software when present.
	DeviceInfo string `json:"deviceInfo,omitempty"`
}

// FootprintReport aggregates the results of one scan invocation for a
// single subject. Only the sections matching the executed scan
// categories are populated.
type FootprintReport struct {
	// Subject is the scanned identifier (username, email address, or
	// phone number). For password scans the subject is left empty so
	// the secret never appears in reports or history.
	Subject string `json:"subject"`

	// Category is the scan category this report covers.
	Category ScanCategory `json:"category"`

	// DateScanned is when the scan started.
	DateScanned time.Time `json:"dateScanned"`

	// Verdicts holds per-platform existence verdicts (username scans).
	// Order matches the platform catalog order.
	Verdicts []ExistenceVerdict `json:"platforms,omitempty"`

	// Breaches holds breach records (email scans).
	Breaches []BreachRecord `json:"breaches,omitempty"`

	// RateLimited is set when the breach service rejected the lookup
	// with a rate-limit response. The caller should retry later.
	RateLimited bool `json:"rateLimited,omitempty"`

	// Exposures holds phone exposure findings (phone scans).
	Exposures []PhoneExposureFinding `json:"phoneExposure,omitempty"`

	// Password holds the strength assessment (password scans).
	Password *PasswordAssessment `json:"password,omitempty"`

	// Metadata holds the file inspection payload (metadata scans).
	Metadata *FileMetadata `json:"metadata,omitempty"`

	// Recommendations is the ordered advisory list derived from the
	// category result payload.
	Recommendations []string `json:"recommendations"`

	// Risk is the report-level aggregate risk tier.
	Risk RiskLevel `json:"riskLevel"`
}

// NewFootprintReport creates a report for the given subject and
// category, stamped with the current time.
func NewFootprintReport(subject string, category ScanCategory) *FootprintReport {
	return &FootprintReport{
		Subject:         subject,
		Category:        category,
		DateScanned:     time.Now(),
		Recommendations: []string{},
	}
}

// ConfirmedPlatforms returns the number of platforms with a confirmed
// profile.
func (r *FootprintReport) ConfirmedPlatforms() int {
	n := 0
	for _, v := range r.Verdicts {
		if v.Exists == ExistenceConfirmed {
			n++
		}
	}
	return n
}

// SensitiveBreaches returns the number of breach records flagged as
// sensitive.
func (r *FootprintReport) SensitiveBreaches() int {
	n := 0
	for _, b := range r.Breaches {
		if b.IsSensitive {
			n++
		}
	}
	return n
}

// HighRiskExposures returns the number of phone exposure findings
// carrying a high risk level.
func (r *FootprintReport) HighRiskExposures() int {
	n := 0
	for _, e := range r.Exposures {
		if e.Risk == RiskHigh {
			n++
		}
	}
	return n
}

// AggregateRisk derives the report-level risk tier from the category
// payload by fixed thresholds. This is the coarse summary shown in
// rendered reports; authoritative scoring remains the consumer's
// concern.
func (r *FootprintReport) AggregateRisk() RiskLevel {
	switch r.Category {
	case CategoryUsername:
		switch n := r.ConfirmedPlatforms(); {
		case n > 5:
			return RiskHigh
		case n >= 3:
			return RiskMedium
		default:
			return RiskLow
		}
	case CategoryEmail:
		switch {
		case r.SensitiveBreaches() > 0:
			return RiskHigh
		case len(r.Breaches) > 0:
			return RiskMedium
		default:
			return RiskLow
		}
	case CategoryPhone:
		switch {
		case r.HighRiskExposures() > 0:
			return RiskHigh
		case len(r.Exposures) > 0:
			return RiskMedium
		default:
			return RiskLow
		}
	case CategoryPassword:
		if r.Password == nil {
			return RiskLow
		}
		switch r.Password.Tier {
		case TierWeak:
			return RiskHigh
		case TierFair:
			return RiskMedium
		default:
			return RiskLow
		}
	case CategoryMetadata:
		if r.Metadata == nil {
			return RiskLow
		}
		switch {
		case r.Metadata.HasLocation:
			return RiskHigh
		case r.Metadata.HasDeviceInfo:
			return RiskMedium
		default:
			return RiskLow
		}
	default:
		return RiskLow
	}
}
