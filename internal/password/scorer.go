package password

import (
	"strings"

	"footprintscan/internal/model"
)

// Remediation feedback strings, appended in rule-evaluation order:
// length rules before variety rules before penalty rules.
const (
	feedbackLength    = "Password should be at least 8 characters"
	feedbackLowercase = "Add lowercase letters"
	feedbackUppercase = "Add uppercase letters"
	feedbackDigits    = "Add numbers"
	feedbackSpecial   = "Add special characters (!@#$%^&*)"
	feedbackPatterns  = "Avoid common patterns"
	feedbackRepeats   = "Avoid repeating characters"
)

// weakPrefixes are common password openings that attract a penalty.
// Matched case-insensitively against the start of the password.
var weakPrefixes = []string{"123", "abc", "qwerty", "password"}

// Score assesses a password's strength from additive and subtractive
// rules, clamping the result into [0, 100] and mapping it to a tier.
//
// Rules, in evaluation order:
//   - length >= 8: +20 (else feedback); >= 12: +10 more; >= 16: +10 more
//   - lowercase/uppercase/digit/special present: +15 each (else feedback)
//   - common weak prefix: -20 with feedback
//   - any character repeated 3+ times consecutively: -10 with feedback
func Score(password string) model.PasswordAssessment {
	score := 0
	feedback := []string{}

	if len(password) >= 8 {
		score += 20
	} else {
		feedback = append(feedback, feedbackLength)
	}
	if len(password) >= 12 {
		score += 10
	}
	if len(password) >= 16 {
		score += 10
	}

	if containsClass(password, isLower) {
		score += 15
	} else {
		feedback = append(feedback, feedbackLowercase)
	}
	if containsClass(password, isUpper) {
		score += 15
	} else {
		feedback = append(feedback, feedbackUppercase)
	}
	if containsClass(password, isDigit) {
		score += 15
	} else {
		feedback = append(feedback, feedbackDigits)
	}
	if containsClass(password, isSpecial) {
		score += 15
	} else {
		feedback = append(feedback, feedbackSpecial)
	}

	if hasWeakPrefix(password) {
		score -= 20
		feedback = append(feedback, feedbackPatterns)
	}
	if hasRepeatedRun(password) {
		score -= 10
		feedback = append(feedback, feedbackRepeats)
	}

	score = clamp(score, 0, 100)

	return model.PasswordAssessment{
		Score:    score,
		Tier:     model.TierForScore(score),
		Feedback: feedback,
	}
}

// containsClass reports whether any byte of s satisfies the class
// predicate. Classes are ASCII by contract: the variety rules reward
// the character classes attackers enumerate, not Unicode categories.
func containsClass(s string, class func(byte) bool) bool {
	for i := 0; i < len(s); i++ {
		if class(s[i]) {
			return true
		}
	}
	return false
}

func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// isSpecial matches any non-alphanumeric byte.
func isSpecial(b byte) bool {
	return !isLower(b) && !isUpper(b) && !isDigit(b)
}

// hasWeakPrefix reports whether the password starts with a common
// weak opening, case-insensitively.
func hasWeakPrefix(password string) bool {
	lowered := strings.ToLower(password)
	for _, prefix := range weakPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			return true
		}
	}
	return false
}

// hasRepeatedRun reports whether any character repeats three or more
// times consecutively.
func hasRepeatedRun(password string) bool {
	run := 1
	for i := 1; i < len(password); i++ {
		if password[i] == password[i-1] {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// clamp bounds v into [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
