package lender

// ReduceFunc is a generic function that folds one lent element into an
// accumulator.  The element must not be retained by the function; copy
// anything that needs to outlive the call.
type ReduceFunc[A any, L any] func(A, L) A
