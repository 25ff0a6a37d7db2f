package lender

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"
)

// TraceFunc defines the function prototype of a tracing function.
// Per lender functions can be configured using WithTraceFunc.
type TraceFunc func(format string, v ...any)

// DefaultTracer is the global default trace function.  It prints messages to
// stderr.  DefaultTracer can be replaced by another tracing function to effect
// all traced lenders.
var DefaultTracer = func(format string, v ...any) {
	fmt.Fprintf(os.Stderr, "<TRACE> "+format+"\n", v...)
}

var lenderCounter atomic.Uint32

type tracer struct {
	begin       time.Time
	description string
	id          uint32
	traceFunc   TraceFunc
}

func newTracer(id uint32, description string, f TraceFunc) *tracer {
	if f == nil {
		f = DefaultTracer
	}

	t := &tracer{
		description: description,
		id:          id,
		traceFunc:   f,
	}

	t.start()
	return t
}

func (t *tracer) start() {
	t.begin = time.Now()
	t.traceFunc("%s: START [lender #%d] %s", t.begin.Format(time.RFC3339), t.id, t.description)
}

func (t *tracer) msg(format string, v ...any) {
	var args []any = []any{
		time.Now().Format(time.RFC3339), t.id, t.description,
	}
	args = append(args, v...)
	t.traceFunc("%s: MSG [lender #%d] %s: "+format, args...)
}

func (t *tracer) end() {
	t.traceFunc("%s: END [lender #%d] %s (%s)", time.Now().Format(time.RFC3339), t.id, t.description,
		time.Since(t.begin))
}

type traceOptions struct {
	tracer      TraceFunc
	description string
	values      bool
}

// TraceOption customizes a lender returned by Trace.
type TraceOption func(o *traceOptions)

// WithTraceFunc sets the trace function.  If not set, DefaultTracer is used.
func WithTraceFunc(f TraceFunc) TraceOption {
	return func(o *traceOptions) {
		o.tracer = f
	}
}

// WithDescription sets the text that identifies the lender in trace
// messages.
func WithDescription(description string) TraceOption {
	return func(o *traceOptions) {
		o.description = description
	}
}

// WithValues causes every lent element to be formatted into its trace
// message with %v.
func WithValues(enable bool) TraceOption {
	return func(o *traceOptions) {
		o.values = enable
	}
}

// TraceLender is the lender returned by Trace.
type TraceLender[L any] struct {
	l      Lender[L]
	t      *tracer
	values bool
	n      int
	ended  bool
}

// Trace returns a lender that reports each step of l through a TraceFunc.
// A START message is emitted immediately, a MSG for every element and an
// END message the first time l reports exhaustion.
func Trace[L any](l Lender[L], opts ...TraceOption) *TraceLender[L] {
	o := traceOptions{
		description: fmt.Sprintf("%T", l),
	}
	for _, f := range opts {
		f(&o)
	}

	return &TraceLender[L]{
		l:      l,
		t:      newTracer(lenderCounter.Add(1), o.description, o.tracer),
		values: o.values,
	}
}

// Next steps the wrapped lender and traces the result.
func (t *TraceLender[L]) Next() (L, bool) {
	x, ok := t.l.Next()
	switch {
	case ok:
		t.n++
		if t.values {
			t.t.msg("lend %d: %v", t.n, x)
		} else {
			t.t.msg("lend %d", t.n)
		}
	case !t.ended:
		t.ended = true
		t.t.msg("exhausted after %d elements", t.n)
		t.t.end()
	}
	return x, ok
}

// IntoLender returns t.
func (t *TraceLender[L]) IntoLender() Lender[L] {
	return t
}

// SizeHint returns the wrapped lender's hint.
func (t *TraceLender[L]) SizeHint() (int, int, bool) {
	return SizeHint(t.l)
}

// Fused reports whether the wrapped lender is fused.
func (t *TraceLender[L]) Fused() bool {
	return IsFused(t.l)
}
