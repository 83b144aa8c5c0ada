package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/aoc/log"
)

func Example_textFormat() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithTimeLayout("none"),
		log.WithPretty(false))

	logger.Info("solved", slog.String("day", "day02"), slog.Int("answer", 15))
	// Output: level=INFO msg=solved day=day02 answer=15
}

func Example_levels() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelWarn),
		log.WithTimeLayout("none"),
		log.WithPretty(false))

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message", slog.String("key", "value"))
	// Output: level=WARN msg="warning message" key=value
}
