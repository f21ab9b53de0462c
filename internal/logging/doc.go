// Package logging assembles structured slog loggers and formatting helpers used
// across irspec commands.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so catalog and CLI code can tag log
// lines with a per-invocation correlation ID. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// The decoding and geometry packages never log; anomalies there travel as
// values and are logged by the caller when it decides they matter.
package logging
