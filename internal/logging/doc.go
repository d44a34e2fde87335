// Package logging provides structured logging for the spinbutton tools.
//
// This package wraps a zap logger with package-level helpers so that every
// component logs through the same instance without threading a logger through
// constructors.
//
// # Log Levels
//
//   - Debug: value changes, key events, binding payloads
//   - Info: binding connections, advertisement, profile saves
//   - Warn: malformed binding messages, dropped clients
//   - Error: listener and advertisement failures
//
// # Configuration
//
// Logging is silent unless a level is given, either explicitly or through
// SPINBUTTON_LOG_LEVEL. The interactive widget draws on the terminal, so log
// lines are best sent to a file with SPINBUTTON_LOG_FILE or --log-file:
//
//	if err := logging.Initialize("debug", "/tmp/spinbutton.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
//	logging.LogValueChange("spinbutton-1a2b3c4d", "4", "5", "increment")
//	logging.LogBindingEvent("127.0.0.1:53412", "connected")
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once Initialize has
// returned.
package logging
