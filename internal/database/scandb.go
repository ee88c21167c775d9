package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"footprintscan/internal/model"
)

// ScanDB provides SQLite-based storage for completed scan reports.
// It manages connection pooling and provides methods for saving and
// retrieving scan history.
//
// Design decision: We use a single database file for all scans rather
// than separate files per subject. This keeps history queries across
// scan types simple and makes backup/restore a one-file operation.
type ScanDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures ScanDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a ScanDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*ScanDB, error) {
	dbPath := filepath.Join(dbDir, "footprintscan.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating
	// new files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	sdb := &ScanDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := sdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return sdb, nil
}

// Close closes the database connection.
func (sdb *ScanDB) Close() error {
	return sdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (sdb *ScanDB) createTables() error {
	schema := `
	-- Scans store complete scan results as JSON
	CREATE TABLE IF NOT EXISTS scans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		subject TEXT NOT NULL,
		category TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		risk TEXT NOT NULL,
		report_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scans_subject ON scans(subject);
	CREATE INDEX IF NOT EXISTS idx_scans_category ON scans(category);
	CREATE INDEX IF NOT EXISTS idx_scans_timestamp ON scans(timestamp);
	`

	_, err := sdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveReport saves a complete scan report as JSON.
// Password scans carry no subject; they are stored with an empty one.
func (sdb *ScanDB) SaveReport(ctx context.Context, report *model.FootprintReport) (int64, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize report: %w", err)
	}

	query := `
	INSERT INTO scans (subject, category, risk, report_json)
	VALUES (?, ?, ?, ?)
	`

	result, err := sdb.db.ExecContext(ctx, query,
		report.Subject,
		report.Category.String(),
		report.Risk.String(),
		string(reportJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save scan report: %w", err)
	}

	return result.LastInsertId()
}

// GetReportByID retrieves a scan report by its database ID.
// Returns nil without error when no report with the ID exists.
func (sdb *ScanDB) GetReportByID(ctx context.Context, id int64) (*model.FootprintReport, error) {
	query := `
	SELECT report_json FROM scans
	WHERE id = ?
	`

	var reportJSON string
	err := sdb.db.QueryRowContext(ctx, query, id).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan report: %w", err)
	}

	var report model.FootprintReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	return &report, nil
}

// GetLatestReport retrieves the most recent scan report for a subject.
// Returns nil without error when the subject has never been scanned.
func (sdb *ScanDB) GetLatestReport(ctx context.Context, subject string) (*model.FootprintReport, error) {
	query := `
	SELECT report_json FROM scans
	WHERE subject = ?
	ORDER BY timestamp DESC
	LIMIT 1
	`

	var reportJSON string
	err := sdb.db.QueryRowContext(ctx, query, subject).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan report: %w", err)
	}

	var report model.FootprintReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	return &report, nil
}

// ScanMetadata contains summary information about a stored scan.
// This is used for displaying scan history without loading full reports.
type ScanMetadata struct {
	// ID is the unique identifier of the scan in the database.
	ID int64

	// Subject is the scanned identifier (username, email, or phone).
	Subject string

	// Category is the scan type.
	Category model.ScanCategory

	// Timestamp is when the scan was performed.
	Timestamp time.Time

	// Risk is the aggregate risk level recorded for the scan.
	Risk model.RiskLevel
}

// ListScans retrieves metadata for stored scans, most recent first.
// An empty category matches all scan types. This is more efficient
// than loading full reports when only the history listing is needed.
func (sdb *ScanDB) ListScans(ctx context.Context, category model.ScanCategory, limit int) ([]ScanMetadata, error) {
	query := `
	SELECT id, subject, category, timestamp, risk
	FROM scans
	WHERE 1=1
	`
	args := make([]any, 0, 2)

	if category != "" {
		query += " AND category = ?"
		args = append(args, category.String())
	}

	query += " ORDER BY timestamp DESC"

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := sdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var results []ScanMetadata
	for rows.Next() {
		var meta ScanMetadata
		var category, timestamp, risk string

		if err := rows.Scan(&meta.ID, &meta.Subject, &category, &timestamp, &risk); err != nil {
			return nil, fmt.Errorf("failed to scan metadata: %w", err)
		}

		meta.Category = model.ScanCategory(category)
		meta.Timestamp = parseTimestamp(timestamp)
		meta.Risk = model.ParseRiskLevel(risk)

		results = append(results, meta)
	}

	return results, rows.Err()
}

// History retrieves all scan reports for a subject, most recent first.
func (sdb *ScanDB) History(ctx context.Context, subject string) ([]*model.FootprintReport, error) {
	query := `
	SELECT report_json FROM scans
	WHERE subject = ?
	ORDER BY timestamp DESC
	`

	rows, err := sdb.db.QueryContext(ctx, query, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to get scan history: %w", err)
	}
	defer rows.Close()

	var reports []*model.FootprintReport
	for rows.Next() {
		var reportJSON string
		if err := rows.Scan(&reportJSON); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}

		var report model.FootprintReport
		if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
			continue // Skip malformed reports
		}
		reports = append(reports, &report)
	}

	return reports, rows.Err()
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
