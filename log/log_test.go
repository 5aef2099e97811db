package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level Info, got %v", logger.Level())
	}
	if logger.caller {
		t.Error("expected caller disabled by default")
	}
	if logger.Format() != FormatText {
		t.Errorf("expected default format text, got %v", logger.Format())
	}
}

func TestLogger_ZeroValue_Discards(t *testing.T) {
	var logger Logger

	logger.Info("nothing")
	logger.TraceContext(t.Context(), "nothing")

	if logger.Enabled(t.Context(), LevelError) {
		t.Error("zero logger reports enabled")
	}
	if got := logger.With(slog.Int("k", 1)); got.Logger != nil {
		t.Error("With on zero logger allocated a handler")
	}
}

func TestLogger_Make_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithLevel(LevelTrace), WithPretty(false))

	logger.Trace("trace message")
	if !strings.Contains(buf.String(), "trace message") {
		t.Error("trace message not logged at Trace level")
	}
	if !strings.Contains(buf.String(), "level=TRACE") {
		t.Errorf("expected TRACE level label, got: %s", buf.String())
	}

	buf.Reset()
	logger = Make(&buf, WithLevel(LevelError))
	logger.Info("info message")
	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	logger.Error("error message")
	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}
}

func TestLogger_Make_WithCaller_IncludesSource(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf, WithCaller(true), WithPretty(false)).Info("test message")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("caller info does not point at the call site: %s", buf.String())
	}

	buf.Reset()
	Make(&buf, WithCaller(false), WithPretty(false)).Info("test message")

	if strings.Contains(buf.String(), "source") {
		t.Error("caller info included when disabled")
	}
}

func TestLogger_Make_WithFormat_SetsOutputFormat(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := Make(&buf, WithFormat(FormatJSON))
		logger.Info("test message", slog.String("key", "value"))

		var result map[string]any
		if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
			t.Fatalf("failed to parse JSON output: %v", err)
		}
		if result["msg"] != "test message" {
			t.Errorf("expected msg=test message, got %v", result["msg"])
		}
		if result["key"] != "value" {
			t.Errorf("expected key=value, got %v", result["key"])
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := Make(&buf, WithFormat(FormatText), WithPretty(false))
		logger.Info("test message", slog.String("key", "value"))

		output := buf.String()
		if !strings.Contains(output, `msg="test message"`) {
			t.Errorf("expected quoted msg in text output, got: %s", output)
		}
		if !strings.Contains(output, "key=value") {
			t.Errorf("expected key=value in text output, got: %s", output)
		}
	})

	t.Run("pretty", func(t *testing.T) {
		var buf bytes.Buffer
		logger := Make(&buf, WithFormat(FormatText), WithPretty(true))
		logger.With(slog.String("file", "top.sv")).
			Info("test message", slog.Group("node", slog.Int("line", 3)))

		output := buf.String()
		for _, want := range []string{"test message", "file", "top.sv", "node.line", "3"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected %q in pretty output, got: %s", want, output)
			}
		}
		if strings.Contains(output, `"`) {
			t.Errorf("pretty output should not quote values, got: %s", output)
		}
	})
}

func TestLogger_WithTimeLayout_None_OmitsTime(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf, WithTimeLayout("none"), WithPretty(false)).Info("message")

	if strings.Contains(buf.String(), "time=") {
		t.Errorf("expected no time attribute, got: %s", buf.String())
	}
}

func TestLogger_Wrap_DoesNotAffectOriginal(t *testing.T) {
	var buf bytes.Buffer
	base := Make(&buf, WithLevel(LevelWarn))
	wrapped := base.Wrap(WithLevel(LevelDebug))

	if base.Level() != LevelWarn {
		t.Errorf("base level changed to %v", base.Level())
	}
	if wrapped.Level() != LevelDebug {
		t.Errorf("wrapped level = %v, want debug", wrapped.Level())
	}
}

func TestLogger_ConcurrentUse(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON))

	var wg sync.WaitGroup

	for i := range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			logger.With(slog.Int("worker", i)).Info("tick")
			_ = logger.Wrap(WithLevel(LevelDebug)).Level()
		}()
	}

	wg.Wait()

	if n := strings.Count(buf.String(), "\n"); n != 16 {
		t.Errorf("expected 16 records, got %d", n)
	}
}

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	var buf bytes.Buffer

	SetDefault(Make(&buf, WithLevel(LevelDebug), WithFormat(FormatJSON)))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
		msg   string
	}{
		{"Debug", Debug, "DEBUG", "debug message"},
		{"Info", Info, "INFO", "info message"},
		{"Warn", Warn, "WARN", "warn message"},
		{"Error", Error, "ERROR", "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn(tt.msg, slog.String("key", "value"))

			output := buf.String()
			if !strings.Contains(output, tt.msg) {
				t.Errorf("expected output to contain message %q, got: %s", tt.msg, output)
			}
			if !strings.Contains(output, tt.level) {
				t.Errorf("expected output to contain level %q, got: %s", tt.level, output)
			}
			if !strings.Contains(output, `"key":"value"`) {
				t.Errorf("expected output to contain attribute, got: %s", output)
			}
		})
	}
}

func TestConfig_UpdatesDefaultLogger(t *testing.T) {
	original := Default()
	defer SetDefault(original)

	var buf bytes.Buffer

	SetDefault(Make(&buf))
	Config(WithLevel(LevelError))

	Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected Info to be filtered, got: %s", buf.String())
	}
}
