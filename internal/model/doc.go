// Package model defines the core data types shared across footprintscan.
//
// All types in this package are transient value types: they are
// constructed fresh per scan request, never mutated after creation,
// and owned solely by the scan invocation that created them.
// Persistence of these values is the database package's concern.
package model
