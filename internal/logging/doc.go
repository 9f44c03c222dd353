// Package logging assembles the structured slog loggers used by spotifyeq.
//
// It owns the console and JSON handlers, maps configuration onto levels and
// outputs, and exposes a no-op logger for tests and wiring code that cannot
// fail. Console output is a single line per record shaped as
// "time LEVEL component: message key=value".
package logging
