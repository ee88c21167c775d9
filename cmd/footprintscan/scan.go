package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"footprintscan/internal/breach"
	"footprintscan/internal/config"
	"footprintscan/internal/database"
	"footprintscan/internal/log"
	"footprintscan/internal/model"
	"footprintscan/internal/phone"
	"footprintscan/internal/pipeline"
	"footprintscan/internal/report"
)

// NewScanCmd creates the scan command group.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan an identifier for digital footprint exposure",
		Long: `Scan audits one identifier and reports its exposure.

Each scan type targets a different identifier:
- username: probes social platforms for profile presence
- email:    looks up breach disclosures
- phone:    estimates exposure across public data sources
- password: scores strength locally (nothing leaves the machine)
- file:     inspects a local file for identifying metadata

Examples:
  # Check which platforms have a profile for a username
  footprintscan scan username johndoe

  # Look up breach disclosures for an email address
  footprintscan scan email user@example.com

  # Output JSON report
  footprintscan scan --json username johndoe

  # Write a Markdown report to a file
  footprintscan scan -m -o report.md email user@example.com

Configuration file (.footprintscan) example:
  breachApiKey: "your-api-key"
  platforms:
    - name: GitHub
      url: "https://github.com/{username}"
      checkUrl: "https://api.github.com/users/{username}"`,
	}

	// Scan behavior flags
	cmd.PersistentFlags().DurationP("timeout", "t", config.DefaultProbeTimeout,
		"Per-request timeout for platform probes")
	cmd.PersistentFlags().IntP("concurrency", "C", config.DefaultProbeConcurrency,
		"Number of concurrent platform probes")
	cmd.PersistentFlags().StringP("api-key", "k", "",
		"API key for the breach disclosure service")

	// Configuration file
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .footprintscan in current or home directory)")

	// Report flags
	cmd.PersistentFlags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.PersistentFlags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.PersistentFlags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// History flags
	cmd.PersistentFlags().Bool("no-save", false,
		"Do not record the scan in the history database")

	cmd.AddCommand(newUsernameCmd())
	cmd.AddCommand(newEmailCmd())
	cmd.AddCommand(newPhoneCmd())
	cmd.AddCommand(newPasswordCmd())
	cmd.AddCommand(newFileCmd())

	return cmd
}

// newUsernameCmd creates the username scan subcommand.
func newUsernameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "username <name>",
		Short: "Probe social platforms for profile presence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScanCmd(cmd, model.CategoryUsername, args[0])
		},
	}
}

// newEmailCmd creates the email scan subcommand.
func newEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "email <address>",
		Short: "Look up breach disclosures for an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScanCmd(cmd, model.CategoryEmail, args[0])
		},
	}
}

// newPhoneCmd creates the phone scan subcommand.
func newPhoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phone <number>",
		Short: "Estimate exposure sources for a phone number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScanCmd(cmd, model.CategoryPhone, phone.Normalize(args[0]))
		},
	}
}

// newPasswordCmd creates the password assessment subcommand.
func newPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "password [password]",
		Short: "Score password strength locally",
		Long: `Password scores a password's strength without any network access.

When no argument is given the password is read from standard input,
which keeps it out of shell history. Password scans are never recorded
in the history database.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := readPassword(cmd, args)
			if err != nil {
				return err
			}
			return runScanCmd(cmd, model.CategoryPassword, secret)
		},
	}
}

// newFileCmd creates the file metadata scan subcommand.
func newFileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "file <path>",
		Short: "Inspect a local file for identifying metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScanCmd(cmd, model.CategoryMetadata, args[0])
		},
	}
}

// readPassword returns the password from the argument or, when
// omitted, from standard input.
func readPassword(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// runScanCmd executes a scan of the given category.
func runScanCmd(cmd *cobra.Command, category model.ScanCategory, subject string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with sensitive-value redaction
	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runScan(ctx, cfg, category, subject, logger)
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ProbeTimeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.ProbeConcurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}

	cfg.BreachAPIKey, err = cmd.Flags().GetString("api-key")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Load settings from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.File, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.File = &config.File{}
	}

	// Flags take precedence over the config file
	if cfg.BreachAPIKey == "" {
		cfg.BreachAPIKey = cfg.File.BreachAPIKey
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	if !noSave {
		cfg.DBDir = config.XDGDataDir()
	}

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// runScan executes the scan pipeline and renders the report.
func runScan(ctx context.Context, cfg *config.Config, category model.ScanCategory, subject string, logger *slog.Logger) error {
	// The password category's subject is the password itself; it never
	// reaches the logger, not even for the handler to redact.
	if category == model.CategoryPassword {
		logger.Info("starting scan", "category", category.String())
	} else {
		logger.Info("starting scan",
			"category", category.String(),
			"subject", subject,
		)
	}

	p, scanReport, err := pipeline.ForCategory(cfg, category, subject,
		pipeline.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Scanning (%s)...\n", category)
	startTime := time.Now()

	// A rate-limited breach lookup still yields a report; the
	// RateLimited flag tells the renderer what happened.
	if err := p.Execute(ctx, scanReport); err != nil && !errors.Is(err, breach.ErrRateLimited) {
		return fmt.Errorf("scan failed: %w", err)
	}

	elapsed := time.Since(startTime)
	fmt.Fprintf(os.Stderr, "Scan completed in %s\n\n", elapsed.Round(time.Millisecond))

	if err := outputReport(cfg, scanReport); err != nil {
		return fmt.Errorf("report failed: %w", err)
	}

	// Password scans carry a secret and are never persisted.
	if cfg.DBDir != "" && category != model.CategoryPassword {
		if err := saveScanReport(ctx, cfg.DBDir, scanReport, logger); err != nil {
			logger.Error("failed to save scan report", "error", err)
		}
	}

	return nil
}

// outputReport renders the scan report in the requested format.
func outputReport(cfg *config.Config, scanReport *model.FootprintReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Reports may contain sensitive information; keep them
		// readable by the owner only.
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(output)
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(output)
	default:
		w = report.NewSimpleWriter(output)
	}

	_, err := w.Write(scanReport)
	return err
}

// saveScanReport persists the completed scan to the history database.
func saveScanReport(ctx context.Context, dbDir string, scanReport *model.FootprintReport, logger *slog.Logger) error {
	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	id, err := db.SaveReport(ctx, scanReport)
	if err != nil {
		return err
	}

	logger.Info("scan saved to history", "id", id, "dir", dbDir)
	return nil
}
