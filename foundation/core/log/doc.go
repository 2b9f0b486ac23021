// File: doc.go
// Title: Package Documentation for log
// Description: Structured, leveled logging for strhelp tools.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

// Package log provides structured logging with levels, key-value fields and
// pluggable formatters (json, text, console).
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Output: os.Stderr,
//		Name:   "strhelp",
//	})
//	logger.WithRequestID(id).Debug("grouped strings", log.Int("groups", 3))
//
// Loggers are immutable: the With* methods return modified copies, so a
// logger can be shared between goroutines.
package log
