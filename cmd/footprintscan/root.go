// Package main provides the entry point for the footprintscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for footprintscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "footprintscan",
		Short: "Digital footprint exposure scanner",
		Long: `Footprintscan audits the digital footprint of an identifier.

It probes social platforms for username presence, looks up email breach
disclosures, estimates phone number exposure, scores password strength,
and inspects local files for identifying metadata. Every scan produces
per-finding details, an aggregate risk level, and remediation advice.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
