// Package channel implements a lender that reads a data stream from
// the supplied channel.
package channel

import (
	"context"

	"github.com/jake-scott/go-lender"
)

// Lender traverses the elements of type T from a channel, until the channel
// is closed or the context expires.  Each received value is owned by the
// caller, so elements stay valid after the next step.
type Lender[T any] struct {
	ctx  context.Context
	ch   <-chan T
	err  error
	done bool
}

// New returns a Lender that traverses the provided channel until the
// channel is closed or ctx is done.
//
// Lender does not support the SizeHinter interface.
func New[T any](ctx context.Context, ch <-chan T) *Lender[T] {
	return &Lender[T]{
		ctx: ctx,
		ch:  ch,
	}
}

// Next reads an item from the channel.  Next returns false if the channel
// was closed or if the context expired, and keeps returning false
// afterwards.
//
// If the context expired, Error() will return the result of the context's
// Err() function.
func (l *Lender[T]) Next() (T, bool) {
	var zero T
	if l.done {
		return zero, false
	}

	select {
	case item, ok := <-l.ch:
		if ok {
			return item, true
		}

		// if ok is false, the read failed due to empty closed channel
	case <-l.ctx.Done():
		l.err = l.ctx.Err()
	}

	l.done = true
	return zero, false
}

// Fused always returns true.
func (l *Lender[T]) Fused() bool {
	return true
}

// IntoLender returns l.
func (l *Lender[T]) IntoLender() lender.Lender[T] {
	return l
}

// Error returns the context expiry reason if any from a previous call
// to Next, otherwise it returns nil.
func (l *Lender[T]) Error() error {
	return l.err
}
