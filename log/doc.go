// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are configured with functional options at creation time and are
// immutable afterwards:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithCaller(true))
//
//	logger.Info("solved", slog.String("day", "day01"), slog.Int("answer", 24000))
//
// Attributes are typed [slog.Attr] values rather than alternating key/value
// arguments.
//
// # Package Logger
//
// The package-level functions ([Info], [Error], ...) write through a default
// logger on stderr. [Config] replaces it with a copy that has extra options
// applied, which is how the CLI applies --log-* flags.
//
// # Levels
//
// [LevelTrace], [LevelDebug], [LevelInfo], [LevelWarn] and [LevelError].
// Trace sits below slog's Debug and renders as "TRACE".
//
// # Pretty Output
//
// With [WithPretty] (the default) text output is colorized through lipgloss
// and JSON output is indented. Colors are only emitted when the destination
// is a terminal.
package log
