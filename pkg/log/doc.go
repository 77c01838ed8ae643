// Package log provides the structured event journal of the dual timer engine.
//
// Every observable decision the engine makes (state transitions, haptic
// pulses, sleep-inhibit requests, accepted and ignored button presses,
// display changes) is emitted as an Event. The journal is separate from
// operational logging (slog): it is a complete machine-readable trace that
// can be replayed, filtered and summarized after the fact.
//
// # Basic Usage
//
// Hosts configure the journal by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.Logger = log.NewSlogAdapter(slog.Default())
//
//	// For later analysis: write to binary file
//	cfg.Logger, _ = log.NewFileLogger("/tmp/doubletimer.dtlog")
//
//	// Both: use MultiLogger
//	cfg.Logger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Journal files use CBOR encoding with the .dtlog extension. Events are
// appended back to back; the doubletimer-log tool provides viewing,
// filtering, statistics and export.
package log
