// Package password implements the rule-based password strength
// scorer. Score is a pure function: no network, no state, no
// randomness, safe to call on every keystroke. The password is never
// logged or persisted.
package password
