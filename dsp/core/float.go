// Package core holds shared primitives used across the library:
// the floating-point type constraint, buffer helpers, and numeric
// comparison utilities.
package core

// Float constrains the sample types supported by the generation and
// window functions. Every exported operation is available in both
// single and double precision through this constraint.
type Float interface {
	~float32 | ~float64
}
