// Package logging provides structured logging for dotcli on top of log/slog.
//
// Diagnostics go to stderr so they never mix with command output on
// stdout. The text handler colorizes levels and keys when stderr is a
// terminal; the JSON handler is used for --log-format=json and for the
// --log-file sink.
//
// Loggers travel in the command context:
//
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("located shell config", "path", p)
//
// Tests can route logs through the testing framework with [ForTest].
package logging
