package advice

import "footprintscan/internal/model"

// crossPlatformThreshold is the confirmed-profile count above which
// the cross-platform-visibility warning is prepended.
const crossPlatformThreshold = 5

// Advisory strings, grouped by category.
const (
	adviceUsernameVisibility = "Your username is highly visible across multiple platforms. Consider using different usernames for different purposes."
	adviceUsernamePrivacy    = "Review privacy settings on all platforms where your username appears."
	adviceUsername2FA        = "Enable two-factor authentication on all accounts."

	adviceEmailRotate    = "Change passwords immediately on all affected services."
	adviceEmail2FA       = "Enable two-factor authentication where available."
	adviceEmailMonitor   = "Monitor your accounts for suspicious activity."
	adviceEmailSensitive = "⚠️ Sensitive data was exposed. Consider freezing credit and monitoring identity theft."
	adviceEmailClean     = "✓ Good news! No breaches found for this email."
	adviceEmailHygiene   = "Continue using strong, unique passwords for each service."

	advicePhoneSecondary = "Your phone number appears in multiple sources. Consider using a secondary number for online services."
	advicePhoneSpam      = "Enable spam call filtering on your device."
	advicePhonePhishing  = "Be cautious of phishing attempts via SMS."

	adviceMetadataLocation = "⚠️ Location data found in file. Remove GPS data before sharing photos online."
	adviceMetadataDevice   = "Device information is embedded in your files. Use metadata removal tools before sharing."
	adviceMetadataStrip    = "Always strip metadata from files before uploading to public platforms."
)

// Generate returns the ordered advisory list for a scan category and
// its result payload.
func Generate(category model.ScanCategory, report *model.FootprintReport) []string {
	if report == nil {
		return []string{}
	}
	switch category {
	case model.CategoryUsername:
		return ForUsername(report.Verdicts)
	case model.CategoryEmail:
		return ForEmail(report.Breaches)
	case model.CategoryPhone:
		return ForPhone(report.Exposures)
	case model.CategoryMetadata:
		return ForMetadata(report.Metadata)
	default:
		return []string{}
	}
}

// ForUsername derives advice from per-platform existence verdicts.
// The visibility warning is prepended only when more than five
// platforms confirmed a profile; the privacy-review and 2FA advice is
// always appended.
func ForUsername(verdicts []model.ExistenceVerdict) []string {
	recommendations := []string{}

	confirmed := 0
	for _, v := range verdicts {
		if v.Exists == model.ExistenceConfirmed {
			confirmed++
		}
	}
	if confirmed > crossPlatformThreshold {
		recommendations = append(recommendations, adviceUsernameVisibility)
	}

	recommendations = append(recommendations, adviceUsernamePrivacy, adviceUsername2FA)
	return recommendations
}

// ForEmail derives advice from breach records. Breached addresses get
// rotation/2FA/monitoring advice plus an elevated warning when any
// record is sensitive; clean addresses get positive reinforcement and
// general hygiene advice. The two branches are exclusive.
func ForEmail(breaches []model.BreachRecord) []string {
	recommendations := []string{}

	if len(breaches) > 0 {
		recommendations = append(recommendations,
			adviceEmailRotate,
			adviceEmail2FA,
			adviceEmailMonitor,
		)
		for _, b := range breaches {
			if b.IsSensitive {
				recommendations = append(recommendations, adviceEmailSensitive)
				break
			}
		}
		return recommendations
	}

	return append(recommendations, adviceEmailClean, adviceEmailHygiene)
}

// ForPhone derives advice from phone exposure findings. No message is
// produced when there are no findings.
func ForPhone(findings []model.PhoneExposureFinding) []string {
	recommendations := []string{}
	if len(findings) > 0 {
		recommendations = append(recommendations,
			advicePhoneSecondary,
			advicePhoneSpam,
			advicePhonePhishing,
		)
	}
	return recommendations
}

// ForMetadata derives advice from a file metadata payload. The
// standing strip-metadata reminder is always included; location and
// device messages are conditional on the payload.
func ForMetadata(metadata *model.FileMetadata) []string {
	recommendations := []string{}
	if metadata != nil {
		if metadata.HasLocation {
			recommendations = append(recommendations, adviceMetadataLocation)
		}
		if metadata.HasDeviceInfo {
			recommendations = append(recommendations, adviceMetadataDevice)
		}
	}
	return append(recommendations, adviceMetadataStrip)
}
