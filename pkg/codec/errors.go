package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch matches any *LengthMismatchError.
	ErrLengthMismatch = errors.New("codec: length mismatch")
	// ErrArityMismatch matches any *ArityMismatchError.
	ErrArityMismatch = errors.New("codec: arity mismatch")
	// ErrOverlongField matches any *OverlongFieldError.
	ErrOverlongField = errors.New("codec: overlong field")
	// ErrInvalidWidth is returned for negative field widths and for widths
	// whose sum overflows an int.
	ErrInvalidWidth = errors.New("codec: invalid field width")
)

// LengthMismatchError reports a buffer whose usable length does not equal
// the sum of the declared widths.
type LengthMismatchError struct {
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("codec: sum of lengths %d does not match the number of bytes %d", e.Expected, e.Actual)
}

func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

// ArityMismatchError reports a slice that cannot be reinterpreted as a
// fixed-size integer.
type ArityMismatchError struct {
	Expected int
	Received int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("codec: expected %d bytes, received %d", e.Expected, e.Received)
}

func (e *ArityMismatchError) Is(target error) bool {
	return target == ErrArityMismatch
}

// OverlongFieldError reports a field whose value does not fit its width.
type OverlongFieldError struct {
	Index  int
	Name   string
	Width  int
	Length int
}

func (e *OverlongFieldError) Error() string {
	name := e.Name
	if name == "" {
		name = fmt.Sprintf("#%d", e.Index)
	}
	return fmt.Sprintf("codec: field %s is %d bytes, exceeds width %d", name, e.Length, e.Width)
}

func (e *OverlongFieldError) Is(target error) bool {
	return target == ErrOverlongField
}
