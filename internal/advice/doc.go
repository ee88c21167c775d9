// Package advice derives human-readable recommendations from scan
// results. Generation is a pure function of the scan category and its
// result payload; no category ever produces an error, and an
// unrecognized category yields an empty list.
package advice
