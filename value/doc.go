// Package value implements the compile-time values produced by constant
// folding.
//
// A [Value] is Invalid, an Integer of up to 64 bits (signed or unsigned,
// sized or unsized), a Real, or a String. Operators never panic: operand
// kinds an operator does not support, division by zero, and any Invalid
// input all yield Invalid, which then propagates through every enclosing
// operation.
package value
