// Package shape resolves the dimensionality of a frontier dataset.
//
// Describe inspects the response column y, the input column x and the
// optional undesirable-output column b, and returns a Descriptor holding
// n, m, p, q, owned matrix copies of the data and the case Key. Every
// downstream builder reads dimensions from the Descriptor; nothing
// re-inspects raw columns.
//
// Errors are *Error values wrapping one of ErrEmpty, ErrLength, ErrRagged,
// ErrNonFinite or ErrDomain:
//
//	_, err := shape.Describe(y, x, shape.None())
//	if errors.Is(err, shape.ErrRagged) { ... }
package shape
