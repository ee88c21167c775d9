package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"footprintscan/internal/model"
)

// setupTestDB creates a temporary database for testing.
func setupTestDB(t *testing.T) *ScanDB {
	t.Helper()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// testReport builds a minimal report for storage tests.
func testReport(subject string, category model.ScanCategory, risk model.RiskLevel) *model.FootprintReport {
	report := model.NewFootprintReport(subject, category)
	report.Risk = risk
	return report
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database in new directory", func(t *testing.T) {
		t.Parallel()

		tmpDir := filepath.Join(t.TempDir(), "nested", "scans")

		db, err := Open(tmpDir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close() //nolint:errcheck

		if _, err := os.Stat(filepath.Join(tmpDir, "footprintscan.db")); err != nil {
			t.Errorf("database file not created: %v", err)
		}
	})

	t.Run("fails when database missing and creation disabled", func(t *testing.T) {
		t.Parallel()

		opts := Options{CreateIfNotExists: false}
		if _, err := Open(t.TempDir(), opts); err == nil {
			t.Error("expected error for missing database, got nil")
		}
	})
}

func TestScanDB_SaveReport(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	report := testReport("johndoe", model.CategoryUsername, model.RiskMedium)
	report.Verdicts = []model.ExistenceVerdict{
		{Platform: "GitHub", ProfileURL: "https://github.com/johndoe", Exists: model.ExistenceConfirmed},
	}

	id, err := db.SaveReport(ctx, report)
	if err != nil {
		t.Fatalf("failed to save report: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected positive report ID, got %d", id)
	}

	got, err := db.GetReportByID(ctx, id)
	if err != nil {
		t.Fatalf("failed to get report: %v", err)
	}
	if got == nil {
		t.Fatal("expected report, got nil")
	}
	if got.Subject != "johndoe" {
		t.Errorf("subject = %q, want %q", got.Subject, "johndoe")
	}
	if got.Category != model.CategoryUsername {
		t.Errorf("category = %q, want %q", got.Category, model.CategoryUsername)
	}
	if got.Risk != model.RiskMedium {
		t.Errorf("risk = %v, want %v", got.Risk, model.RiskMedium)
	}
	if len(got.Verdicts) != 1 || got.Verdicts[0].Platform != "GitHub" {
		t.Errorf("verdicts not round-tripped: %+v", got.Verdicts)
	}
}

func TestScanDB_GetReportByID_NotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	got, err := db.GetReportByID(context.Background(), 9999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing report, got %+v", got)
	}
}

func TestScanDB_GetLatestReport(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	first := testReport("user@example.com", model.CategoryEmail, model.RiskLow)
	second := testReport("user@example.com", model.CategoryEmail, model.RiskHigh)

	if _, err := db.SaveReport(ctx, first); err != nil {
		t.Fatalf("failed to save first report: %v", err)
	}
	// CURRENT_TIMESTAMP has second precision; backdate the first scan
	// so ORDER BY timestamp picks the second.
	if _, err := db.db.ExecContext(ctx,
		"UPDATE scans SET timestamp = datetime('now', '-1 hour') WHERE id = 1"); err != nil {
		t.Fatalf("failed to backdate first report: %v", err)
	}
	if _, err := db.SaveReport(ctx, second); err != nil {
		t.Fatalf("failed to save second report: %v", err)
	}

	got, err := db.GetLatestReport(ctx, "user@example.com")
	if err != nil {
		t.Fatalf("failed to get latest report: %v", err)
	}
	if got == nil {
		t.Fatal("expected report, got nil")
	}
	if got.Risk != model.RiskHigh {
		t.Errorf("risk = %v, want %v (latest scan)", got.Risk, model.RiskHigh)
	}

	missing, err := db.GetLatestReport(ctx, "never-scanned")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown subject, got %+v", missing)
	}
}

func TestScanDB_ListScans(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	reports := []*model.FootprintReport{
		testReport("alice", model.CategoryUsername, model.RiskLow),
		testReport("alice@example.com", model.CategoryEmail, model.RiskHigh),
		testReport("bob", model.CategoryUsername, model.RiskMedium),
	}
	for _, r := range reports {
		if _, err := db.SaveReport(ctx, r); err != nil {
			t.Fatalf("failed to save report: %v", err)
		}
	}

	t.Run("all categories", func(t *testing.T) {
		got, err := db.ListScans(ctx, "", 0)
		if err != nil {
			t.Fatalf("failed to list scans: %v", err)
		}
		if len(got) != 3 {
			t.Errorf("got %d scans, want 3", len(got))
		}
	})

	t.Run("filtered by category", func(t *testing.T) {
		got, err := db.ListScans(ctx, model.CategoryUsername, 0)
		if err != nil {
			t.Fatalf("failed to list scans: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %d scans, want 2", len(got))
		}
		for _, meta := range got {
			if meta.Category != model.CategoryUsername {
				t.Errorf("category = %q, want %q", meta.Category, model.CategoryUsername)
			}
		}
	})

	t.Run("limit", func(t *testing.T) {
		got, err := db.ListScans(ctx, "", 1)
		if err != nil {
			t.Fatalf("failed to list scans: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("got %d scans, want 1", len(got))
		}
	})

	t.Run("metadata fields populated", func(t *testing.T) {
		got, err := db.ListScans(ctx, model.CategoryEmail, 0)
		if err != nil {
			t.Fatalf("failed to list scans: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("got %d scans, want 1", len(got))
		}
		meta := got[0]
		if meta.Subject != "alice@example.com" {
			t.Errorf("subject = %q, want %q", meta.Subject, "alice@example.com")
		}
		if meta.Risk != model.RiskHigh {
			t.Errorf("risk = %v, want %v", meta.Risk, model.RiskHigh)
		}
		if meta.Timestamp.IsZero() {
			t.Error("timestamp should be populated")
		}
	})
}

func TestScanDB_History(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := db.SaveReport(ctx, testReport("alice", model.CategoryUsername, model.RiskLow)); err != nil {
			t.Fatalf("failed to save report: %v", err)
		}
	}
	if _, err := db.SaveReport(ctx, testReport("bob", model.CategoryUsername, model.RiskLow)); err != nil {
		t.Fatalf("failed to save report: %v", err)
	}

	got, err := db.History(ctx, "alice")
	if err != nil {
		t.Fatalf("failed to get history: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("got %d reports, want 3", len(got))
	}
	for _, r := range got {
		if r.Subject != "alice" {
			t.Errorf("subject = %q, want %q", r.Subject, "alice")
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		zero  bool
	}{
		{name: "sqlite default", input: "2026-08-29 10:30:00", zero: false},
		{name: "iso 8601 with Z", input: "2026-08-29T10:30:00Z", zero: false},
		{name: "rfc3339 with offset", input: "2026-08-29T10:30:00+09:00", zero: false},
		{name: "garbage", input: "not-a-timestamp", zero: true},
		{name: "empty", input: "", zero: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := parseTimestamp(tc.input)
			if got.IsZero() != tc.zero {
				t.Errorf("parseTimestamp(%q).IsZero() = %v, want %v", tc.input, got.IsZero(), tc.zero)
			}
		})
	}
}
