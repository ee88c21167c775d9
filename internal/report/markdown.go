package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"footprintscan/internal/model"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown for
// documentation and sharing. The nao1215/markdown library provides
// type-safe generation of tables, lists, and alerts.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.FootprintReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeAlert(md, report)

	switch report.Category {
	case model.CategoryUsername:
		w.writePlatforms(md, report)
	case model.CategoryEmail:
		w.writeBreaches(md, report)
	case model.CategoryPhone:
		w.writeExposures(md, report)
	case model.CategoryPassword:
		w.writePassword(md, report)
	case model.CategoryMetadata:
		w.writeMetadata(md, report)
	}

	w.writeRecommendations(md, report)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with scan information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.FootprintReport) {
	md.H1("Digital Footprint Report")
	md.PlainText("")

	rows := [][]string{
		{"Scan Type", report.Category.String()},
		{"Scan Date", report.DateScanned.Format("2006-01-02 15:04:05 MST")},
		{"Risk Level", strings.ToUpper(report.Risk.String())},
	}
	if report.Subject != "" {
		rows = append([][]string{{"Subject", "`" + report.Subject + "`"}}, rows...)
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeAlert writes an alert matching the aggregate risk level.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.FootprintReport) {
	if report.RateLimited {
		md.Caution("The breach service rate limit was exceeded. Try again later.")
		md.PlainText("")
		return
	}
	switch report.Risk {
	case model.RiskHigh:
		md.Warning("High exposure detected. Review the findings and recommendations below.")
	case model.RiskMedium:
		md.Important("Moderate exposure detected. Some findings warrant attention.")
	default:
		md.Tip("Low exposure. Keep up the good security hygiene.")
	}
	md.PlainText("")
}

// writePlatforms writes the per-platform verdict table.
func (w *MarkdownWriter) writePlatforms(md *markdown.Markdown, report *model.FootprintReport) {
	md.H2("Platform Presence")
	md.PlainText("")

	rows := make([][]string, 0, len(report.Verdicts))
	for _, v := range report.Verdicts {
		rows = append(rows, []string{
			v.Platform,
			existenceBadge(v.Exists),
			v.PublicInfo,
			v.ProfileURL,
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Platform", "Status", "Public Info", "URL"},
		Rows:   rows,
	})
	md.PlainText("")
}

// existenceBadge renders a tri-state verdict for table display.
func existenceBadge(e model.Existence) string {
	switch e {
	case model.ExistenceConfirmed:
		return "✅ exists"
	case model.ExistenceAbsent:
		return "❌ not found"
	default:
		return "❓ unknown"
	}
}

// writeBreaches writes the breach disclosure table.
func (w *MarkdownWriter) writeBreaches(md *markdown.Markdown, report *model.FootprintReport) {
	md.H2("Breach Disclosures")
	md.PlainText("")

	if len(report.Breaches) == 0 {
		md.PlainText("No breaches found for this address.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(report.Breaches))
	for _, b := range report.Breaches {
		sensitive := ""
		if b.IsSensitive {
			sensitive = "⚠️"
		}
		rows = append(rows, []string{
			b.Title,
			b.Domain,
			b.BreachDate.Format("2006-01-02"),
			strconv.FormatInt(b.PwnCount, 10),
			strings.Join(b.DataClasses, ", "),
			sensitive,
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Breach", "Domain", "Date", "Accounts", "Exposed Data", "Sensitive"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeExposures writes the phone exposure table.
func (w *MarkdownWriter) writeExposures(md *markdown.Markdown, report *model.FootprintReport) {
	md.H2("Exposure Sources")
	md.PlainText("")

	if len(report.Exposures) == 0 {
		md.PlainText("No exposure sources found for this number.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(report.Exposures))
	for _, e := range report.Exposures {
		rows = append(rows, []string{
			e.Source,
			strings.ToUpper(e.Risk.String()),
			e.Details,
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Source", "Risk", "Details"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writePassword writes the password assessment section.
func (w *MarkdownWriter) writePassword(md *markdown.Markdown, report *model.FootprintReport) {
	if report.Password == nil {
		return
	}
	md.H2("Password Strength")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Score", "Strength"},
		Rows: [][]string{
			{strconv.Itoa(report.Password.Score) + " / 100", report.Password.Tier.String()},
		},
	})
	md.PlainText("")
}

// writeMetadata writes the file metadata section.
func (w *MarkdownWriter) writeMetadata(md *markdown.Markdown, report *model.FootprintReport) {
	if report.Metadata == nil {
		return
	}
	md.H2("File Metadata")
	md.PlainText("")

	rows := [][]string{{"File", "`" + report.Metadata.Path + "`"}}
	if report.Metadata.HasLocation {
		rows = append(rows, []string{"Location", report.Metadata.Location})
	}
	if report.Metadata.HasDeviceInfo {
		rows = append(rows, []string{"Device", report.Metadata.DeviceInfo})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeRecommendations writes the advisory list.
func (w *MarkdownWriter) writeRecommendations(md *markdown.Markdown, report *model.FootprintReport) {
	md.H2("Recommendations")
	md.PlainText("")
	if len(report.Recommendations) == 0 {
		md.PlainText("No recommendations for this scan.")
		md.PlainText("")
		return
	}
	md.BulletList(report.Recommendations...)
	md.PlainText("")
}
