// Package cmd implements the svexpr subcommands.
//
// Commands read tree documents through the document package, run one or
// both expression engines, and write results to the output stored in the
// context by [WithOutput] (standard output by default).
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path
	// of the configuration file without its extension.
	ConfigIdentifier = "config"
)
