// Package log provides structured logging for btstring.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with JSON, text, console and
//              logfmt output. Integrates with the core error package so that
//              structured errors are logged with their code, severity and
//              details.
// Author: btstring maintainers
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-15
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Output: os.Stderr,
//		Name:   "btstring",
//	}).WithCorrelationID(uuid.NewString())
//
//	logger.Debug("splitting text", log.Int("groups", 3))
//
//	timer := logger.StartTimer("balance")
//	// ... work
//	timer.Stop()
//
//	logger.LogError(err)
package log
