// Package cli contains the command line interface for svexpr.
//
// # Commands
//
//	svexpr eval  [-n NAME]... [-D NAME=EXPR]... FILE...
//	svexpr lower [-o tree|compact|json|yaml|dump] FILE...
//	svexpr batch [-j JOBS] [--metrics FILE] FILE...
//	svexpr tags  [QUERY]
//	svexpr init  [--force]
//
// Document arguments that do not name an existing file are searched for in
// the --path directories and then in $SVEXPR_PATH.
//
// # Configuration
//
// Flag defaults are read from config.json and config.yaml in the user
// configuration directory (for example ~/.config/svexpr). The init command
// writes config.yaml from the current flag values. YAML keys may be nested:
//
//	log:
//	  level: debug
//	  format: json
//
// # Logging Options
//
//   - --log-level: trace, debug, info, warn, or error
//   - --log-format: text or json
//   - --log-time-layout: timestamp format (RFC3339, Kitchen, etc.)
//   - --log-caller: include caller information
//   - --log-pretty: colorize output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o svexpr .
//
// It adds --pprof-mode (cpu, heap, allocs, and so on) and --pprof-dir,
// which defaults to the pprof subdirectory of the user cache directory.
package cli
