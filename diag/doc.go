// Package diag carries the diagnostics raised while folding expressions.
//
// Evaluation raises exactly one kind, [UnresolvedName]. Diagnostics flow to
// a [Sink]; a [Collector] keeps them for later inspection and a [LogSink]
// writes them through the logger.
package diag
