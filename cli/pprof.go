//go:build pprof

package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/svexpr/log"
	"github.com/ardnew/svexpr/profile"
)

// pprofConfig selects a runtime profile of the whole command, for example
// the CPU time spent folding and lowering every expression of a batch run.
// One profile file per run is written beneath Dir.
type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"Profile the command with this pprof mode." placeholder:"${enum}" short:"p"`
	Dir  string `default:"${pprofDir}"                          help:"Directory receiving profile files."                               type:"path"`
}

// vars supplies the mode enum and the default output directory, which is
// the pprof subdirectory of the svexpr cache directory.
func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(profile.Modes(), ","),
		"pprofDir":      filepath.Join(cacheDir(), profile.Tag),
	}
}

func (pprofConfig) group() kong.Group {
	return kong.Group{Key: "pprof", Title: "Profiling options (pprof builds only)"}
}

// start begins profiling when a mode is selected. The returned func stops
// the profiler and flushes its file; it runs after the command returns.
func (f pprofConfig) start(ctx context.Context) (stop func()) {
	if f.Mode == "" {
		return func() {}
	}

	attrs := []slog.Attr{slog.String("mode", f.Mode), slog.String("dir", f.Dir)}

	log.DebugContext(ctx, "profiling started", attrs...)

	p := profile.Profiler{Mode: f.Mode, Path: f.Dir, Quiet: true}.Start()

	return func() {
		p.Stop()
		log.InfoContext(ctx, "profile written", attrs...)
	}
}
