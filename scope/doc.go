// Package scope implements the lexical scope chain that names resolve
// against.
//
// A [Scope] maps names to storage cells and links to an enclosing parent.
// Every scope in one chain shares a single value table, so a [Cell] is a
// stable handle to one binding: reading it yields a copy and writing it
// mutates the binding that every later lookup observes. Increment and
// decrement operators are the only writers during evaluation.
//
// Chains are not meant to be shared by concurrent evaluations that mutate.
// [Scope.Snapshot] deep-copies a chain into a fresh table for each worker.
package scope
