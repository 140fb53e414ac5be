package detar

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
)

// inflate decompresses buf into an owned buffer according to the
// algorithm. With NoAlgorithm the input is returned as is and the
// decoded views alias it directly; otherwise they alias the inflated
// buffer, which lives as long as the views derived from it.
func inflate(buf []byte, algorithm Algorithm) ([]byte, error) {
	var r io.Reader
	switch algorithm {
	case NoAlgorithm:
		return buf, nil
	case GzipAlgorithm:
		gr, err := gzip.NewReader(bytes.NewReader(buf))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer func() { _ = gr.Close() }()
		r = gr
	case LZ4Algorithm:
		lr := lz4.NewReader(bytes.NewReader(buf))
		if err := lr.Apply(lz4.ConcurrencyOption(-1)); err != nil {
			return nil, fmt.Errorf("failed to apply lz4 options: %w", err)
		}
		r = lr
	default:
		return nil, ErrUnsupportedAlgorithm
	}
	inflated, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to inflate archive: %w", err)
	}
	return inflated, nil
}
