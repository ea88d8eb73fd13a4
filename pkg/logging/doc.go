// Package logging provides structured logging utilities for the mbti tool.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults:
// JSON records on stderr, module and version attributes on every record, and
// source location when running at debug level.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
//	logging.SetDefaultStructuredLoggerWithLevel("mbti", "v0.1.0", "warn")
//	slog.Warn("catalog slow to load", "types", 16)
//
// # Environment Configuration
//
// The CLI's --log-level flag falls back to the LOG_LEVEL environment variable:
//
//	LOG_LEVEL=debug mbti get intj
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "catalog loaded",
//	    "module": "mbti",
//	    "version": "v0.1.0",
//	    "types": 16
//	}
package logging
