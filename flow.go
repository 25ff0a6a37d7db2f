package lender

// ControlFlow tells a short-circuiting fold whether to carry on with a new
// accumulator of type C, or to stop early with a value of type B.
type ControlFlow[C any, B any] struct {
	brk  bool
	cont C
	val  B
}

// Continue returns a ControlFlow that carries on folding with acc.
func Continue[C, B any](acc C) ControlFlow[C, B] {
	return ControlFlow[C, B]{cont: acc}
}

// Break returns a ControlFlow that stops folding with v.
func Break[C, B any](v B) ControlFlow[C, B] {
	return ControlFlow[C, B]{brk: true, val: v}
}

// IsBreak reports whether the fold stopped early.
func (f ControlFlow[C, B]) IsBreak() bool {
	return f.brk
}

// IsContinue reports whether the fold ran to completion.
func (f ControlFlow[C, B]) IsContinue() bool {
	return !f.brk
}

// ContinueValue returns the accumulator and true if f is a Continue.
func (f ControlFlow[C, B]) ContinueValue() (C, bool) {
	return f.cont, !f.brk
}

// BreakValue returns the value passed to Break and true if f is a Break.
func (f ControlFlow[C, B]) BreakValue() (B, bool) {
	return f.val, f.brk
}
