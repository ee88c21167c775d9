package report

import (
	"fmt"
	"io"
	"strings"

	"footprintscan/internal/model"
)

// SimpleWriter outputs human-readable text reports for terminal
// display. Plain text with ASCII formatting works in all terminals
// and pipes cleanly to files and other tools.
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no findings are shown.
	showEmpty bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.FootprintReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)

	switch report.Category {
	case model.CategoryUsername:
		w.writePlatforms(&sb, report)
	case model.CategoryEmail:
		w.writeBreaches(&sb, report)
	case model.CategoryPhone:
		w.writeExposures(&sb, report)
	case model.CategoryPassword:
		w.writePassword(&sb, report)
	case model.CategoryMetadata:
		w.writeMetadata(&sb, report)
	}

	w.writeRecommendations(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with scan information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.FootprintReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                      DIGITAL FOOTPRINT REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	if report.Subject != "" {
		sb.WriteString(fmt.Sprintf("Subject:    %s\n", report.Subject))
	}
	sb.WriteString(fmt.Sprintf("Scan Type:  %s\n", report.Category))
	sb.WriteString(fmt.Sprintf("Scan Date:  %s\n", report.DateScanned.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Risk Level: %s\n", strings.ToUpper(report.Risk.String())))
	if report.RateLimited {
		sb.WriteString("Status:     RATE LIMITED (try again later)\n")
	}
	sb.WriteString("\n")
}

// writePlatforms writes the per-platform existence verdicts.
func (w *SimpleWriter) writePlatforms(sb *strings.Builder, report *model.FootprintReport) {
	w.sectionHeader(sb, "PLATFORM PRESENCE")

	for _, v := range report.Verdicts {
		marker := "?"
		switch v.Exists {
		case model.ExistenceConfirmed:
			marker = "+"
		case model.ExistenceAbsent:
			marker = "-"
		}
		sb.WriteString(fmt.Sprintf("  [%s] %-12s %s\n", marker, v.Platform, v.PublicInfo))
		sb.WriteString(fmt.Sprintf("      %s\n", v.ProfileURL))
	}
	sb.WriteString(fmt.Sprintf("\n  %d of %d platforms confirmed\n\n",
		report.ConfirmedPlatforms(), len(report.Verdicts)))
}

// writeBreaches writes the breach records section.
func (w *SimpleWriter) writeBreaches(sb *strings.Builder, report *model.FootprintReport) {
	if len(report.Breaches) == 0 && !w.showEmpty {
		sb.WriteString("  No breaches found.\n\n")
		return
	}

	w.sectionHeader(sb, "BREACH DISCLOSURES")

	for _, b := range report.Breaches {
		sb.WriteString(fmt.Sprintf("  [!] %s (%s)\n", b.Title, b.Domain))
		sb.WriteString(fmt.Sprintf("      Breached: %s  Accounts: %d\n",
			b.BreachDate.Format("2006-01-02"), b.PwnCount))
		if len(b.DataClasses) > 0 {
			sb.WriteString(fmt.Sprintf("      Exposed:  %s\n", strings.Join(b.DataClasses, ", ")))
		}
		if b.IsSensitive {
			sb.WriteString("      SENSITIVE BREACH\n")
		}
	}
	sb.WriteString("\n")
}

// writeExposures writes the phone exposure findings.
func (w *SimpleWriter) writeExposures(sb *strings.Builder, report *model.FootprintReport) {
	if len(report.Exposures) == 0 && !w.showEmpty {
		sb.WriteString("  No exposure sources found.\n\n")
		return
	}

	w.sectionHeader(sb, "EXPOSURE SOURCES")

	for _, e := range report.Exposures {
		sb.WriteString(fmt.Sprintf("  [%s] %s\n", strings.ToUpper(e.Risk.String()), e.Source))
		sb.WriteString(fmt.Sprintf("        %s\n", e.Details))
	}
	sb.WriteString("\n")
}

// writePassword writes the password assessment section.
func (w *SimpleWriter) writePassword(sb *strings.Builder, report *model.FootprintReport) {
	if report.Password == nil {
		return
	}
	w.sectionHeader(sb, "PASSWORD STRENGTH")
	sb.WriteString(fmt.Sprintf("  Score:    %d / 100\n", report.Password.Score))
	sb.WriteString(fmt.Sprintf("  Strength: %s\n\n", report.Password.Tier))
}

// writeMetadata writes the file metadata section.
func (w *SimpleWriter) writeMetadata(sb *strings.Builder, report *model.FootprintReport) {
	if report.Metadata == nil {
		return
	}
	w.sectionHeader(sb, "FILE METADATA")
	sb.WriteString(fmt.Sprintf("  File: %s\n", report.Metadata.Path))
	if report.Metadata.HasLocation {
		sb.WriteString(fmt.Sprintf("  [!] Location: %s\n", report.Metadata.Location))
	}
	if report.Metadata.HasDeviceInfo {
		sb.WriteString(fmt.Sprintf("  [!] Device:   %s\n", report.Metadata.DeviceInfo))
	}
	if !report.Metadata.HasLocation && !report.Metadata.HasDeviceInfo {
		sb.WriteString("  No identifying metadata found.\n")
	}
	sb.WriteString("\n")
}

// writeRecommendations writes the advisory section.
func (w *SimpleWriter) writeRecommendations(sb *strings.Builder, report *model.FootprintReport) {
	if len(report.Recommendations) == 0 && !w.showEmpty {
		return
	}

	w.sectionHeader(sb, "RECOMMENDATIONS")
	for _, r := range report.Recommendations {
		sb.WriteString(fmt.Sprintf("  * %s\n", r))
	}
	sb.WriteString("\n")
}

// sectionHeader writes a dashed section divider with a title.
func (w *SimpleWriter) sectionHeader(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")
}
