// Package logging assembles structured slog loggers shared across marquee
// components.
//
// It centralizes level and output plumbing, exposes attribute helpers so
// packages log with a consistent shape, and provides a no-op logger for tests
// and wiring code that cannot fail. Prefer these constructors over hand-rolled
// slog setup.
package logging
