// Package logging provides centralized structured logging configuration and
// utilities shared by the animation runtime packages.
//
// This package wraps logrus to provide consistent logging across the state
// machine runtime, sprite engine, and resource loaders. It supports
// environment-based configuration, multiple formatters, and contextual
// logging.
//
// # Configuration
//
// The logger can be configured via environment variables:
//   - LOG_LEVEL: Sets the minimum log level (debug, info, warn, error, fatal). Default: info
//   - LOG_FORMAT: Sets the output format (json, text). Default: text
//
// # Usage
//
// Initialize the logger at application startup:
//
//	logger := logging.NewLogger(logging.Config{
//	    Level:      logging.InfoLevel,
//	    Format:     logging.TextFormat,
//	    AddCaller:  true,
//	})
//
// Use structured fields for context:
//
//	logger.WithFields(logrus.Fields{
//	    "layer": "Base Layer",
//	    "state": "Attack",
//	}).Info("transition committed")
//
// # Performance
//
// Avoid logging in hot paths (update/sample) above Info level. The
// *logrus.Entry helpers in this package require a non-nil logger. The
// resource loaders and the orchestrator in the other packages accept a nil
// *logrus.Logger, in which case they log nothing.
package logging
