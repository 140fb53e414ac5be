package detar

import (
	"errors"
	"fmt"
)

var (
	ErrInapplicableOption   = errors.New("option not applicable")
	ErrUnknownValue         = errors.New("value is unknown")
	ErrUnsupportedAlgorithm = errors.New("algorithm unsupported")

	ErrInvalidOctalDigit = errors.New("invalid octal digit")
	ErrOctalOverflow     = errors.New("octal value overflows uint64")
	ErrInvalidText       = errors.New("invalid text bytes")
	ErrUnexpectedEOF     = errors.New("unexpected end of input")
	ErrChecksumMismatch  = errors.New("header checksum mismatch")
)

// FieldError reports a decode failure, naming the header or contents
// field and its absolute byte offset in the decoded buffer.
type FieldError struct {
	Field  string
	Offset int
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s at offset %d: %v", e.Field, e.Offset, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
