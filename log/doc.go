// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("expression folded", slog.String("name", "WIDTH"))
//
// A zero [Logger] is valid and discards everything. Library packages such as
// eval and lower hold one by value and log only when configured.
//
// # Configuration
//
// Configure a logger using functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("kitchen"),
//		log.WithCaller(true))
//
// [Logger.Wrap] derives a logger with additional options, and [Logger.With]
// derives one that attaches attributes to every record.
//
// # Levels
//
// Five levels are supported. [LevelTrace] sits below [LevelDebug] and is used
// for per-node dispatch decisions in the expression engines.
//
// # Output Formats
//
// [FormatText] (default) and [FormatJSON]. Text output is styled with
// lipgloss when [WithPretty] is enabled; styling degrades to plain text when
// the destination is not a terminal.
//
// # Package-Level Logger
//
// Functions such as [Info] and [DebugContext] write to a process-wide logger
// that the CLI configures from its --log-* flags using [Config].
package log
