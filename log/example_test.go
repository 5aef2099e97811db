package log_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/svexpr/log"
)

func Example_basic() {
	logger := log.Make(os.Stdout, log.WithTimeLayout("none"), log.WithPretty(false))
	logger.Info("expression folded", slog.String("name", "WIDTH"), slog.Int("value", 8))
	// Output:
	// level=INFO msg="expression folded" name=WIDTH value=8
}

func Example_configuration() {
	logger := log.Make(os.Stdout,
		log.WithLevel(log.LevelDebug),
		log.WithTimeLayout("RFC3339Nano"),
		log.WithCaller(true))

	logger.Debug("debug message with caller info")
}

func Example_levels() {
	logger := log.Make(os.Stdout, log.WithLevel(log.LevelWarn))

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message", slog.String("key", "value"))
	logger.Error("error message", slog.String("error", "unresolved name"))
}

func Example_textFormat() {
	logger := log.Make(os.Stdout, log.WithFormat(log.FormatText))
	logger.Info("text format message", slog.String("file", "top.sv"))
}

func Example_withAttributes() {
	logger := log.Make(os.Stdout)
	logger = logger.With(slog.String("file", "top.sv"))

	logger.Info("lowering expression")
	logger.Debug("node details", slog.String("tag", "Constant_expression"))
}

func Example_withContext() {
	type fileKey struct{}

	ctx := context.WithValue(context.Background(), fileKey{}, "top.sv")

	logger := log.Make(os.Stdout)

	logger.InfoContext(ctx, "lowering expression with context")
	logger.DebugContext(ctx, "node details", slog.String("tag", "Primary_literal"))
}
