// Package logging provides structured logging utilities for the component host.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// and conventions for consistent logging across packages. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
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
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("componenthost", "v1.0.0")
//	    slog.Info("host built", "components", 8)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("componenthost", "v1.0.0", "debug")
//	h := host.New(reg, outer, inner, req, host.WithLogger(logger))
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("componenthost", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug componenthost resolve --inner course.yaml
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "component host built",
//	    "module": "componenthost",
//	    "version": "v1.0.0",
//	    "host_id": "5d0c...",
//	    "components": 8
//	}
//
// Debug logs include source location.
package logging
