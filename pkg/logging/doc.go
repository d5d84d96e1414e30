// Package logging provides a structured logging system for n8nctl with unified
// log handling and level filtering.
//
// This package implements a logging system built on Go's standard slog package,
// providing consistent logging behavior with structured output.
//
// # Log Levels
//   - **Debug**: Detailed information for debugging and development
//   - **Info**: General informational messages about application operation
//   - **Warn**: Warning messages that indicate potential issues
//   - **Error**: Error messages for failures and exceptional conditions
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//	logging.Info("Setup", "selected %d services", n)
//	logging.Error("Compose", err, "status query failed")
//
// Every log entry carries a subsystem identifier so output from different
// parts of the workflow can be told apart.
package logging
