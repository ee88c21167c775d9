package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// Timeouts mirror what the upstream identity sources tolerate in
// practice: platform probes must stay snappy because six of them run
// per scan, while the breach service is slower and gets more headroom.
const (
	// DefaultProbeTimeout bounds a single platform existence probe.
	// Exceeding it resolves the probe to its failure outcome, never a hang.
	DefaultProbeTimeout = 5 * time.Second

	// DefaultBreachTimeout bounds the breach-disclosure lookup.
	DefaultBreachTimeout = 10 * time.Second

	// DefaultProbeConcurrency is the number of platform probes allowed
	// in flight at once. The catalog currently holds six platforms, so
	// this effectively means full fan-out.
	DefaultProbeConcurrency = 6

	// DefaultBrowserUserAgent is sent on platform probes. Several
	// platforms block default client signatures, so a realistic
	// browser string is required for meaningful 200/404 answers.
	DefaultBrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// DefaultClientUserAgent is the descriptive identifier sent to the
	// breach-disclosure service, which requires one.
	DefaultClientUserAgent = "footprintscan"

	// DefaultBreachEndpoint is the breached-account endpoint of the
	// disclosure service. The URL-encoded email is appended.
	DefaultBreachEndpoint = "https://haveibeenpwned.com/api/v3/breachedaccount/"

	// DefaultPhoneExposureProbability is the per-category inclusion
	// probability for phone exposure trials. A placeholder until a
	// real phone-intelligence source replaces the sampling.
	DefaultPhoneExposureProbability = 0.4

	// DefaultSyntheticBreachProbability is the probability of the
	// synthetic generator appending its unconditional well-known
	// breach record.
	DefaultSyntheticBreachProbability = 0.5

	// AppName is the application name used for XDG directory paths.
	AppName = "footprintscan"
)

// Config holds all configuration options for footprintscan.
// It is populated from CLI flags and the optional config file, then
// passed into components at construction. Components never reach for
// process-wide state, which keeps them independently testable with
// mock endpoints and mock timeouts.
type Config struct {
	// ProbeTimeout is the per-request timeout for platform probes.
	ProbeTimeout time.Duration

	// BreachTimeout is the timeout for the breach-disclosure lookup.
	BreachTimeout time.Duration

	// ProbeConcurrency bounds the number of concurrent platform probes.
	ProbeConcurrency int

	// BreachAPIKey is the optional API key for the breach service.
	// Without it the service typically rejects automated queries,
	// which routes lookups through the synthetic fallback.
	BreachAPIKey string

	// BreachEndpoint overrides the breach service base URL.
	// Used by tests to point at a local server.
	BreachEndpoint string

	// BrowserUserAgent is the User-Agent sent on platform probes.
	BrowserUserAgent string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When empty, reports are written to stdout.
	ReportFile string

	// DBDir is the directory for the scan-history SQLite database.
	// When empty, completed scans are not persisted.
	DBDir string

	// ConfigFilePath is an explicit config file path. When empty, the
	// loader searches the current and home directories.
	ConfigFilePath string

	// File holds settings loaded from the configuration file.
	File *File
}

// NewConfig creates a new Config with default values.
// Many defaults are non-zero, so relying on zero values would produce
// a broken configuration.
func NewConfig() *Config {
	return &Config{
		ProbeTimeout:     DefaultProbeTimeout,
		BreachTimeout:    DefaultBreachTimeout,
		ProbeConcurrency: DefaultProbeConcurrency,
		BreachEndpoint:   DefaultBreachEndpoint,
		BrowserUserAgent: DefaultBrowserUserAgent,
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.ProbeTimeout <= 0 || c.BreachTimeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.ProbeConcurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

// XDGDataDir returns the XDG data directory for footprintscan.
// On Linux: ~/.local/share/footprintscan
// On macOS: ~/Library/Application Support/footprintscan
// On Windows: %LOCALAPPDATA%\footprintscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}
