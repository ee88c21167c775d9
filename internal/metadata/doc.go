// Package metadata inspects local files for embedded metadata that
// would leak into a public digital footprint when shared.
//
// The inspector currently understands EXIF metadata in images: GPS
// coordinates (location disclosure) and camera make/model/software
// fields (device identification). The resulting payload feeds the
// metadata branch of the recommendation generator.
package metadata
