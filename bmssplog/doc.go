// Package bmssplog is the structured-logging façade shared by every BMSSP
// subsystem: a small leveled interface backed by log/slog, silent by
// default until a caller opts in.
//
// Callers inject a Logger via functional options (see the bmssp package's
// WithLogger); nothing in this module ever logs unless one is supplied.
package bmssplog
