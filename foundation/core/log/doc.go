// Package log provides structured logging for nvdiff.
//
// Package: log
// Title: Structured Logging
// Description: Leveled logger with persistent context fields, a correlation id,
//              JSON / text / console / logfmt output and operation timers. Error
//              values from the error package are logged with their code and
//              severity attached.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Default output moved to stderr, async mode and audit level removed
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText}).
//		WithCorrelationID(runID)
//
//	timer := logger.StartTimer("parse dump")
//	records, err := dump.Parse(content)
//	if err != nil {
//		timer.StopWithError(err)
//	}
//	timer.WithField("records", len(records)).Stop()
package log
