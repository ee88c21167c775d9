// Package log provides secure structured logging for footprintscan.
//
// Scan subjects are personal data: email addresses, phone numbers,
// and above all passwords must never reach log output raw. The
// SecureHandler wraps any slog.Handler and redacts sensitive
// attributes before they are written.
package log
