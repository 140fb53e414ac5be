package detar

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// reader is a cursor over the input buffer. All decoding advances
// through it, and every slice it hands out aliases the buffer.
type reader struct {
	buf []byte
	off int
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

// take consumes exactly n bytes and returns them as a view.
func (r *reader) take(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, ErrUnexpectedEOF
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

// field consumes a fixed-width text slot of n bytes. The value runs up
// to the first NUL inside the slot; a slot without a NUL yields all n
// bytes. The cursor advances exactly n bytes either way.
func (r *reader) field(n int) (string, error) {
	b, err := r.take(n)
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidText
	}
	return string(b), nil
}

// octalField consumes a fixed-width slot holding an octal number.
func (r *reader) octalField(n int) (uint64, error) {
	s, err := r.field(n)
	if err != nil {
		return 0, err
	}
	return parseOctal(s)
}

// textAt and octalAt attribute failures to a named header field at its
// absolute offset.

func (r *reader) textAt(field string, n int) (string, error) {
	off := r.off
	s, err := r.field(n)
	if err != nil {
		return "", &FieldError{Field: field, Offset: off, Err: err}
	}
	return s, nil
}

func (r *reader) octalAt(field string, n int) (uint64, error) {
	off := r.off
	u, err := r.octalField(n)
	if err != nil {
		return 0, &FieldError{Field: field, Offset: off, Err: err}
	}
	return u, nil
}

// parseOctal converts an ASCII octal string to an unsigned integer.
// The empty string decodes to zero.
func parseOctal(s string) (uint64, error) {
	var u uint64
	for _, c := range s {
		if c < '0' || c > '7' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidOctalDigit, c)
		}
		if u > ((1<<64-1)-7)/8 {
			return 0, ErrOctalOverflow
		}
		u = u*8 + uint64(c-'0')
	}
	return u, nil
}
