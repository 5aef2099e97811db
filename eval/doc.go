// Package eval folds expression syntax trees to compile-time values.
//
// An [Evaluator] walks a tree depth-first and applies the operators of
// package value to the folded operands. Names resolve through a
// [scope.Resolver]; increment and decrement store their results back
// through the resolved cell:
//
//	x = 5
//	x++   folds to 5 and leaves x = 6
//	++x   folds to 7 and leaves x = 7
//
// Folding never fails. Anything that cannot be folded is Invalid, and
// Invalid propagates through every operator that consumes it.
package eval
