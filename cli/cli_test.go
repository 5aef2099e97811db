package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardnew/svexpr/log"
	"github.com/ardnew/svexpr/pkg"
)

func TestSearchPath(t *testing.T) {
	flag, env := t.TempDir(), t.TempDir()
	missing := filepath.Join(env, "missing")

	t.Setenv(pkg.EnvPrefix+"_PATH", env+string(os.PathListSeparator)+missing)

	assert.Equal(t, []string{flag, env}, searchPath([]string{flag}))
}

func TestLogConfig_Scan(t *testing.T) {
	t.Cleanup(func() {
		log.Config(log.WithLevel(log.DefaultLevel), log.WithPretty(true), log.WithCaller(false))
	})

	tests := []struct {
		name   string
		args   []string
		level  logLevel
		format logFormat
		pretty bool
		caller bool
	}{
		{"assigned", []string{"--log-level=debug", "--log-format=json", "eval"}, "debug", "json", true, false},
		{"separate values", []string{"eval", "--log-level", "trace", "--log-caller"}, "trace", "", true, true},
		{"negated", []string{"--no-log-pretty", "--log-caller=false"}, "", "", false, false},
		{"negated explicit", []string{"--no-log-pretty=false"}, "", "", true, false},
		{"other flags ignored", []string{"--level=debug", "-n", "x"}, "", "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := logConfig{Pretty: true}
			f.scan(tt.args)

			assert.Equal(t, tt.level, f.Level)
			assert.Equal(t, tt.format, f.Format)
			assert.Equal(t, tt.pretty, f.Pretty)
			assert.Equal(t, tt.caller, f.Caller)
		})
	}
}
