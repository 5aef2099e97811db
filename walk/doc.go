// Package walk decodes expression syntax trees into a small set of shapes
// shared by the evaluator and the lowerer.
//
// The parser encodes an expression as a generic tree in which the tag of a
// node's first child selects its meaning. [Decode] applies that rule once,
// skipping wrappers, and reports a [Form]. [Walk] dispatches a form to a
// [Visitor], so each engine implements one method per shape and neither can
// interpret a tree shape the other does not.
package walk
