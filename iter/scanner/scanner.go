// Package scanner implements a stream tokenizer lender.
//
// The package makes use of the standard library bufio.Scanner to buffer and
// split data read from an io.Reader.  Scanner has a set of standard splitters
// for words, lines and runes and supports custom split functions as well.
//
// Tokens are lent as the byte slices returned by Scanner.Bytes, which point
// into the scanner's buffer and are overwritten by the following step.
package scanner

import (
	"context"
	"fmt"

	"github.com/jake-scott/go-lender"
)

// Lender wraps a bufio.Scanner to traverse over a stream of tokens
// such as words or lines read from an io.Reader.
//
// Lender does not support the SizeHinter interface.
type Lender struct {
	ctx     context.Context
	scanner Scanner
	err     error
	done    bool
	last    []byte
}

// Scanner is an interface defining a subset of the methods exposed by
// bufio.Scanner, and is here primarily to assist with unit testing.
type Scanner interface {
	Scan() bool
	Bytes() []byte
	Err() error
}

// ErrTooManyTokens is returned in response to a panic in the
// scanner.Scan() method, the result of too many tokens being returned without
// the scanner advancing.
type ErrTooManyTokens struct {
	panicMessage string
	err          error
}

func (e ErrTooManyTokens) Error() string {
	if e.err == nil {
		return "too many tokens: " + e.panicMessage
	} else {
		return fmt.Sprintf("too many tokens: %s", e.err)
	}
}

func (e ErrTooManyTokens) Unwrap() error {
	return e.err
}

// New returns a Lender that uses bufio.Scanner to traverse through tokens
// such as words or lines from an io.Reader such as a file.  Cancelling ctx
// stops the traversal at the next step.
func New(ctx context.Context, scanner Scanner) *Lender {
	return &Lender{
		ctx:     ctx,
		scanner: scanner,
	}
}

// Next advances the lender to the next token by calling Scanner.Scan().
// It returns false if the end of the input is reached or an error is
// encountered including cancellation of the context.  If the scanner
// panics, Next returns false and Error() will return the message from the
// scanner.
//
// The returned slice is only valid until the next call to Next.
func (l *Lender) Next() (token []byte, ok bool) {
	if l.done {
		return nil, false
	}

	defer func() {
		switch err := recover().(type) {
		default:
			l.err = ErrTooManyTokens{panicMessage: fmt.Sprintf("%v", err)}
			token, ok = nil, false
		case error:
			l.err = ErrTooManyTokens{err: err}
			token, ok = nil, false
		case nil:
		}

		if !ok {
			l.done = true
		}
	}()

	select {
	case <-l.ctx.Done():
		l.err = l.ctx.Err()
		return nil, false
	default:
	}

	if !l.scanner.Scan() {
		return nil, false
	}
	return l.scanner.Bytes(), true
}

// Last drains the scanner and returns a copy of the final token, kept in
// storage owned by the lender.
func (l *Lender) Last() ([]byte, bool) {
	found := false
	for tok, ok := l.Next(); ok; tok, ok = l.Next() {
		l.last = append(l.last[:0], tok...)
		found = true
	}

	if !found {
		return nil, false
	}
	return l.last, true
}

// Fused always returns true; once Next has returned false the scanner is
// not called again.
func (l *Lender) Fused() bool {
	return true
}

// IntoLender returns l.
func (l *Lender) IntoLender() lender.Lender[[]byte] {
	return l
}

// Error returns the panic message from the scanner if one occured during
// a Next() call, or the cancellation message if the context was cancelled.
// Otherwise, Error calls the Scanner's Err() method, which
// returns nil if there are no errors or if the end of input is reached,
// otherwise the first error encounterd by the scanner.
func (l *Lender) Error() error {
	if l.err != nil {
		return l.err
	}

	return l.scanner.Err()
}
