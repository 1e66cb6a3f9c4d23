// Package codec implements the codec registry, error-handler registry,
// and text/byte transcoders: the Go counterpart of CPython's internal
// _codecs module.
package codec

import (
	"errors"
	"fmt"
)

// Sentinel errors mirroring the LookupError/TypeError/IndexError rows
// the original dispatches for codec and error-handler failures.
var (
	// ErrUnknownEncoding is returned by Lookup when no registered search
	// function recognizes the (normalized) encoding name.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrUnknownErrorHandler is returned by LookupError when no handler
	// has been registered under the given name.
	ErrUnknownErrorHandler = errors.New("unknown error handler")

	// ErrNotCallable is returned by Register/RegisterError when the
	// supplied function is nil.
	ErrNotCallable = errors.New("argument must not be nil")

	// ErrMalformedReturn stands for an error-handler return that is not
	// a (replacement, position) pair. ErrorHandler's typed signature
	// rules that shape out, so no function in this package returns it.
	ErrMalformedReturn = errors.New("error handler returned invalid position")

	// ErrPositionOutOfRange is returned when the resume position an
	// error handler returns (a negative one counted from the end) falls
	// outside [0, len(input)], or lies before the start of the failing
	// range.
	ErrPositionOutOfRange = errors.New("error handler position out of range")
)

// DecodeError reports a decoding failure over a byte range of the
// input, the Go shape of UnicodeDecodeError.
type DecodeError struct {
	Encoding string
	Input    []byte
	Start    int
	End      int
	Reason   string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s codec can't decode byte(s) in position %d-%d: %s",
		e.Encoding, e.Start, e.End, e.Reason)
}

// EncodeError reports an encoding failure over a rune range of the
// input, the Go shape of UnicodeEncodeError.
type EncodeError struct {
	Encoding string
	Input    string
	Start    int
	End      int
	Reason   string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%s codec can't encode character(s) in position %d-%d: %s",
		e.Encoding, e.Start, e.End, e.Reason)
}

// TranslateError reports a failure to translate characters via a
// charmap, the Go shape of UnicodeTranslateError.
type TranslateError struct {
	Input  string
	Start  int
	End    int
	Reason string
}

func (e *TranslateError) Error() string {
	return fmt.Sprintf("can't translate character(s) in position %d-%d: %s",
		e.Start, e.End, e.Reason)
}

// codecError is the interface all three Unicode*Error shapes satisfy,
// so a single ErrorHandler signature can serve encode, decode, and
// translate callers alike.
type codecError interface {
	error
	rangeBounds() (start, end int)
}

func (e *DecodeError) rangeBounds() (int, int)    { return e.Start, e.End }
func (e *EncodeError) rangeBounds() (int, int)    { return e.Start, e.End }
func (e *TranslateError) rangeBounds() (int, int) { return e.Start, e.End }

var (
	_ codecError = (*DecodeError)(nil)
	_ codecError = (*EncodeError)(nil)
	_ codecError = (*TranslateError)(nil)
)

// ErrorHandler is the Go shape of a registered error handler: given the
// error describing what went wrong, it returns a replacement run of
// text (runes for a decode error, a string for an encode/translate
// error rendered back to runes by the caller) and the position the
// caller should resume from.
//
// A handler that cannot recover returns a non-nil err, which the caller
// should propagate (this is how "strict" is implemented).
type ErrorHandler func(err error) (replacement []rune, resumeFrom int, reterr error)

// callErrorHandler invokes handler and validates the returned resume
// position against the bounds of the failing range, mirroring
// unicode_call_errorhandler's position-normalization and bounds checks.
func callErrorHandler(handler ErrorHandler, err error, inputLen int) ([]rune, int, error) {
	repl, resume, herr := handler(err)
	if herr != nil {
		return nil, 0, herr
	}

	if resume < 0 {
		resume += inputLen
	}
	if resume < 0 || resume > inputLen {
		return nil, 0, fmt.Errorf("%w: position %d not in range [0, %d]", ErrPositionOutOfRange, resume, inputLen)
	}

	if ce, ok := err.(codecError); ok {
		start, _ := ce.rangeBounds()
		if resume < start {
			return nil, 0, fmt.Errorf("%w: must not move backward past %d", ErrPositionOutOfRange, start)
		}
	}

	return repl, resume, nil
}
