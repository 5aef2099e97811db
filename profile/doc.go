// Package profile wraps [github.com/pkg/profile] behind the pprof build tag.
//
// Binaries built without the tag carry no profiling code: [Modes] is empty
// and [Profiler.Start] returns a Stopper that does nothing. With the tag,
// Start writes one profile of the selected mode to Path:
//
//	go build -tags pprof .
//	svexpr --pprof-mode cpu --pprof-dir ./profiles batch testdata/*.yaml
//
//	stop := profile.Profiler{Mode: "cpu", Path: dir, Quiet: true}.Start()
//	defer stop.Stop()
package profile
