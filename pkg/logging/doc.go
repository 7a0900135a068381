// Package logging provides structured logging utilities for the BMI API.
//
// # Overview
//
// This package wraps the standard library slog package with service defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// automatic source location tracking for debug logs, and changing the level of
// the default logger at runtime.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Runtime level changes (SetLevel) for config reloads
//   - Integration with standard library log package
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
//	    logging.SetDefaultStructuredLogger("bmi-api", "v1.0.0")
//
//	    slog.Info("processing request", "id", "req-123")
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("bmi-api", "v1.0.0", "debug")
//	logger.Info("server starting", "port", 8080)
//
// Changing the level after a config reload:
//
//	logging.SetLevel("debug")
//
// Converting to a standard library logger (e.g. http.Server.ErrorLog):
//
//	stdLogger := logging.NewLogLogger(slog.LevelError)
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server started",
//	    "module": "bmi-api",
//	    "version": "v1.0.0",
//	    "port": 8080
//	}
package logging
