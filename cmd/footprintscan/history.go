package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"footprintscan/internal/config"
	"footprintscan/internal/database"
	"footprintscan/internal/model"
	"footprintscan/internal/report"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past scans from the history database",
		Long: `History lists completed scans recorded in the local database.

Each scan is stored with its subject, scan type, timestamp, and risk
level. Use --show to re-render a stored report by ID.

Examples:
  # List the most recent scans
  footprintscan history

  # List only email scans
  footprintscan history --type email

  # Re-render a stored report
  footprintscan history --show 12

  # Re-render a stored report as JSON
  footprintscan history --show 12 --json`,
		RunE: runHistoryCmd,
	}

	cmd.Flags().StringP("type", "T", "",
		"Filter by scan type (username, email, phone, metadata)")
	cmd.Flags().IntP("limit", "n", 20,
		"Maximum number of scans to list (0 for all)")
	cmd.Flags().Int64P("show", "s", 0,
		"Re-render the stored report with the given ID")
	cmd.Flags().BoolP("json", "j", false,
		"Output the stored report as JSON (with --show)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	showID, err := cmd.Flags().GetInt64("show")
	if err != nil {
		return err
	}

	db, err := database.Open(config.XDGDataDir(), database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if showID > 0 {
		return showStoredReport(cmd, db, showID)
	}
	return listScans(cmd, db)
}

// showStoredReport re-renders a stored report by ID.
func showStoredReport(cmd *cobra.Command, db *database.ScanDB, id int64) error {
	stored, err := db.GetReportByID(cmd.Context(), id)
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("no scan with ID %d", id)
	}

	jsonOut, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	var w report.Writer
	if jsonOut {
		w = report.NewJSONWriter(cmd.OutOrStdout())
	} else {
		w = report.NewSimpleWriter(cmd.OutOrStdout())
	}

	_, err = w.Write(stored)
	return err
}

// listScans prints a table of stored scan metadata.
func listScans(cmd *cobra.Command, db *database.ScanDB) error {
	typeFilter, err := cmd.Flags().GetString("type")
	if err != nil {
		return err
	}

	var category model.ScanCategory
	if typeFilter != "" {
		category = model.ParseScanCategory(typeFilter)
		if !category.IsValid() {
			return fmt.Errorf("unknown scan type %q", typeFilter)
		}
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	scans, err := db.ListScans(cmd.Context(), category, limit)
	if err != nil {
		return err
	}

	if len(scans) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No scans recorded yet.")
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-6s %-10s %-30s %-20s %s\n", "ID", "TYPE", "SUBJECT", "DATE", "RISK")
	fmt.Fprintln(out, strings.Repeat("-", 78))
	for _, meta := range scans {
		fmt.Fprintf(out, "%-6s %-10s %-30s %-20s %s\n",
			strconv.FormatInt(meta.ID, 10),
			meta.Category.String(),
			truncate(meta.Subject, 30),
			meta.Timestamp.Format("2006-01-02 15:04:05"),
			strings.ToUpper(meta.Risk.String()),
		)
	}

	return nil
}

// truncate shortens a string for table display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
