// Package pipeline orchestrates footprint scans. A pipeline executes
// an ordered list of steps against a single report; each scan
// category (username, email, phone, password, metadata) is
// implemented as a step that fills its section of the report and
// derives recommendations from the result payload.
package pipeline
