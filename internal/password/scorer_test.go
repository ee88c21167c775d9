package password

import (
	"slices"
	"testing"

	"footprintscan/internal/model"
)

func TestScore(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		password     string
		wantScore    int
		wantTier     model.StrengthTier
		wantFeedback []string
	}{
		{
			name:      "empty password",
			password:  "",
			wantScore: 0,
			wantTier:  model.TierWeak,
			wantFeedback: []string{
				"Password should be at least 8 characters",
				"Add lowercase letters",
				"Add uppercase letters",
				"Add numbers",
				"Add special characters (!@#$%^&*)",
			},
		},
		{
			// 8+ chars (+20), lowercase (+15), weak prefix (-20) = 15
			name:      "common weak password",
			password:  "password",
			wantScore: 15,
			wantTier:  model.TierWeak,
			wantFeedback: []string{
				"Add uppercase letters",
				"Add numbers",
				"Add special characters (!@#$%^&*)",
				"Avoid common patterns",
			},
		},
		{
			// 8+ chars (+20), lowercase (+15), repeated run (-10) = 25
			name:      "repeated characters",
			password:  "aaaaaaaa",
			wantScore: 25,
			wantTier:  model.TierWeak,
			wantFeedback: []string{
				"Add uppercase letters",
				"Add numbers",
				"Add special characters (!@#$%^&*)",
				"Avoid repeating characters",
			},
		},
		{
			// 8 and 12 length bonuses (+30), all four classes (+60) = 90
			name:         "strong mixed password",
			password:     "Tr0ub4dor&3x",
			wantScore:    90,
			wantTier:     model.TierStrong,
			wantFeedback: []string{},
		},
		{
			// all bonuses (+40 length, +60 classes) = 100
			name:         "long passphrase with variety",
			password:     "Correct-Horse-Battery-7!",
			wantScore:    100,
			wantTier:     model.TierStrong,
			wantFeedback: []string{},
		},
		{
			// short (+0), digits only (+15) = 15
			name:      "short digits",
			password:  "9471",
			wantScore: 15,
			wantTier:  model.TierWeak,
			wantFeedback: []string{
				"Password should be at least 8 characters",
				"Add lowercase letters",
				"Add uppercase letters",
				"Add special characters (!@#$%^&*)",
			},
		},
		{
			// qwerty prefix matched case-insensitively:
			// 8+ (+20), lower (+15), upper (+15), digit (+15) = 65, -20 = 45
			name:      "uppercased weak prefix",
			password:  "QWERTYuiop1",
			wantScore: 45,
			wantTier:  model.TierFair,
			wantFeedback: []string{
				"Add special characters (!@#$%^&*)",
				"Avoid common patterns",
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Score(tc.password)

			if got.Score != tc.wantScore {
				t.Errorf("score = %d, want %d", got.Score, tc.wantScore)
			}
			if got.Tier != tc.wantTier {
				t.Errorf("tier = %q, want %q", got.Tier, tc.wantTier)
			}
			if !slices.Equal(got.Feedback, tc.wantFeedback) {
				t.Errorf("feedback = %q, want %q", got.Feedback, tc.wantFeedback)
			}
		})
	}
}

func TestScore_Idempotent(t *testing.T) {
	t.Parallel()

	first := Score("Tr0ub4dor&3x")
	second := Score("Tr0ub4dor&3x")

	if first.Score != second.Score || first.Tier != second.Tier {
		t.Errorf("repeat scoring differs: %+v vs %+v", first, second)
	}
}

func TestScore_NeverBelowZero(t *testing.T) {
	t.Parallel()

	// Weak prefix and repeated run on a short password drive the raw
	// score negative; the result must clamp to zero.
	got := Score("abccc")
	if got.Score != 0 {
		t.Errorf("score = %d, want 0 (clamped)", got.Score)
	}
	if got.Tier != model.TierWeak {
		t.Errorf("tier = %q, want %q", got.Tier, model.TierWeak)
	}
}

func TestHasRepeatedRun(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "triple run", password: "abccc", want: true},
		{name: "double only", password: "abccd", want: false},
		{name: "run at start", password: "aaab", want: true},
		{name: "no repeats", password: "abcdef", want: false},
		{name: "empty", password: "", want: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := hasRepeatedRun(tc.password); got != tc.want {
				t.Errorf("hasRepeatedRun(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}

func TestHasWeakPrefix(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		password string
		want     bool
	}{
		{name: "password prefix", password: "password123", want: true},
		{name: "numeric prefix", password: "123456", want: true},
		{name: "mixed case prefix", password: "PaSsWoRd!", want: true},
		{name: "prefix in middle", password: "my123key", want: false},
		{name: "clean", password: "Tr0ub4dor", want: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := hasWeakPrefix(tc.password); got != tc.want {
				t.Errorf("hasWeakPrefix(%q) = %v, want %v", tc.password, got, tc.want)
			}
		})
	}
}
