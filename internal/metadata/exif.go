package metadata

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	exif "github.com/dsoprea/go-exif/v3"

	"footprintscan/internal/model"
)

// maxImageSize limits how much of a file is read during inspection.
const maxImageSize = 16 * 1024 * 1024

// Inspector extracts footprint-relevant metadata from local files.
type Inspector struct {
	// logger for structured logging.
	logger *slog.Logger
}

// InspectorOption configures an Inspector.
type InspectorOption func(*Inspector)

// WithInspectorLogger sets a custom logger for the inspector.
func WithInspectorLogger(logger *slog.Logger) InspectorOption {
	return func(i *Inspector) {
		i.logger = logger
	}
}

// NewInspector creates a metadata Inspector.
func NewInspector(opts ...InspectorOption) *Inspector {
	i := &Inspector{}
	for _, opt := range opts {
		opt(i)
	}
	if i.logger == nil {
		i.logger = slog.Default()
	}
	return i
}

// InspectFile reads a local file and extracts its metadata payload.
// A file without EXIF data yields an empty payload, not an error;
// only I/O failures are errors.
func (i *Inspector) InspectFile(path string) (*model.FileMetadata, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided file path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, maxImageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return i.Inspect(path, data), nil
}

// Inspect extracts the metadata payload from raw file bytes.
func (i *Inspector) Inspect(path string, data []byte) *model.FileMetadata {
	meta := &model.FileMetadata{Path: path}

	rawExif, err := exif.SearchAndExtractExif(data)
	if err != nil || rawExif == nil {
		// No EXIF block is the common case for sanitized files.
		return meta
	}

	entries, _, err := exif.GetFlatExifData(rawExif, nil)
	if err != nil {
		i.logger.Debug("EXIF parse failed", "path", path, "error", err)
		return meta
	}

	var gps []string
	var device []string
	for _, entry := range entries {
		switch entry.TagName {
		case "GPSLatitude", "GPSLongitude":
			gps = append(gps, entry.TagName+": "+entry.Formatted)
		case "Make", "Model", "Software", "ProcessingSoftware", "HostComputer":
			device = append(device, entry.TagName+": "+entry.Formatted)
		}
	}

	if len(gps) > 0 {
		meta.HasLocation = true
		meta.Location = strings.Join(gps, ", ")
	}
	if len(device) > 0 {
		meta.HasDeviceInfo = true
		meta.DeviceInfo = strings.Join(device, ", ")
	}

	i.logger.Debug("file inspected",
		"path", path,
		"has_location", meta.HasLocation,
		"has_device_info", meta.HasDeviceInfo,
	)
	return meta
}
