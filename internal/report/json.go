package report

import (
	"encoding/json"
	"io"

	"footprintscan/internal/model"
)

// JSONWriter outputs reports as indented JSON for machine
// consumption and archival.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report as indented JSON followed by a newline.
func (w *JSONWriter) Write(report *model.FootprintReport) (int, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	return w.output.Write(data)
}
