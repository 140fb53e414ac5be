package detar

import (
	"io"
	"unicode/utf8"
)

// Decoder decodes the entries of an in-memory tar archive one at a
// time. It shouldn't be zero-constructed. Use NewDecoder instead.
type Decoder struct {
	r reader
	// Option fields.
	algorithm      Algorithm
	binaryContents bool
	verifyChecksum bool
}

// NewDecoder creates a Decoder over the archive held in buf with
// options. The buffer must stay immutable and alive for as long as any
// decoded header or contents view is in use.
func NewDecoder(buf []byte, options ...Option) (*Decoder, error) {
	d := &Decoder{}
	for _, option := range options {
		if err := option(d); err != nil {
			return nil, err
		}
	}
	buf, err := inflate(buf, d.algorithm)
	if err != nil {
		return nil, err
	}
	d.r = reader{buf: buf}
	return d, nil
}

// Next decodes and returns the next entry. End-of-archive marker
// blocks decode to entries with empty names and are skipped. io.EOF
// reports that the input is fully consumed; once Next returns any
// error the Decoder is exhausted.
func (d *Decoder) Next() (*TarEntry, error) {
	for d.r.remaining() > 0 {
		entry, err := d.decodeEntry()
		if err != nil {
			d.r.off = len(d.r.buf)
			return nil, err
		}
		if entry.Header.Name == "" {
			continue
		}
		return entry, nil
	}
	return nil, io.EOF
}

func (d *Decoder) decodeEntry() (*TarEntry, error) {
	recordOff := d.r.off
	header, err := decodeHeader(&d.r)
	if err != nil {
		return nil, err
	}
	if d.verifyChecksum {
		record := d.r.buf[recordOff:d.r.off]
		if err := verifyChecksum(record, header.Checksum); err != nil {
			return nil, &FieldError{Field: "chksum", Offset: recordOff + checksumOffset, Err: err}
		}
	}
	contents, err := d.decodeContents(header.Size)
	if err != nil {
		return nil, err
	}
	return &TarEntry{Header: header, Contents: contents}, nil
}

// decodeContents consumes size bytes of payload plus the zero padding
// that aligns the next header record to a 512-byte boundary.
func (d *Decoder) decodeContents(size uint64) ([]byte, error) {
	off := d.r.off
	padding := (blockSize - size%blockSize) % blockSize
	if size+padding > uint64(d.r.remaining()) {
		return nil, &FieldError{Field: "contents", Offset: off, Err: ErrUnexpectedEOF}
	}
	contents, err := d.r.take(int(size))
	if err != nil {
		return nil, &FieldError{Field: "contents", Offset: off, Err: err}
	}
	if !d.binaryContents && !utf8.Valid(contents) {
		return nil, &FieldError{Field: "contents", Offset: off, Err: ErrInvalidText}
	}
	if _, err := d.r.take(int(padding)); err != nil {
		return nil, &FieldError{Field: "contents", Offset: off, Err: err}
	}
	return contents, nil
}

// Decode decodes a whole archive held in buf and returns its entries
// in order of appearance. The decode is all-or-nothing: the first
// invalid field aborts it and no entries are returned.
func Decode(buf []byte, options ...Option) ([]TarEntry, error) {
	d, err := NewDecoder(buf, options...)
	if err != nil {
		return nil, err
	}
	var entries []TarEntry
	for {
		entry, err := d.Next()
		if err != nil {
			if err != io.EOF {
				return nil, err
			}
			return entries, nil
		}
		entries = append(entries, *entry)
	}
}
