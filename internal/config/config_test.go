package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.ProbeTimeout != DefaultProbeTimeout {
		t.Errorf("probeTimeout = %v, want %v", cfg.ProbeTimeout, DefaultProbeTimeout)
	}
	if cfg.BreachTimeout != DefaultBreachTimeout {
		t.Errorf("breachTimeout = %v, want %v", cfg.BreachTimeout, DefaultBreachTimeout)
	}
	if cfg.ProbeConcurrency != DefaultProbeConcurrency {
		t.Errorf("probeConcurrency = %d, want %d", cfg.ProbeConcurrency, DefaultProbeConcurrency)
	}
	if cfg.BreachEndpoint != DefaultBreachEndpoint {
		t.Errorf("breachEndpoint = %q, want %q", cfg.BreachEndpoint, DefaultBreachEndpoint)
	}
	if cfg.BrowserUserAgent == "" {
		t.Error("browserUserAgent should have a default")
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:    "defaults are valid",
			modify:  func(*Config) {},
			wantErr: nil,
		},
		{
			name:    "zero probe timeout",
			modify:  func(c *Config) { c.ProbeTimeout = 0 },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative breach timeout",
			modify:  func(c *Config) { c.BreachTimeout = -time.Second },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "zero concurrency",
			modify:  func(c *Config) { c.ProbeConcurrency = 0 },
			wantErr: ErrInvalidConcurrency,
		},
		{
			name: "conflicting report formats",
			modify: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tc.modify(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestXDGDataDir(t *testing.T) {
	t.Parallel()

	dir := XDGDataDir()
	if dir == "" {
		t.Fatal("XDGDataDir() returned empty string")
	}
	if !strings.HasSuffix(dir, AppName) {
		t.Errorf("XDGDataDir() = %q, want suffix %q", dir, AppName)
	}
}
