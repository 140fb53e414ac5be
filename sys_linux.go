package detar

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// MapFile maps the archive at path into memory read-only, so decoding
// borrows pages straight from the page cache instead of copying the
// file. The returned close function unmaps the buffer; it mustn't be
// called while any view decoded from the buffer is still in use.
func MapFile(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	info, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	size := info.Size()
	if size == 0 {
		// Zero-length mappings are invalid, and there is nothing to read.
		return nil, func() error { return nil }, nil
	}
	buf, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to mmap %s: %w", path, err)
	}
	return buf, func() error { return unix.Munmap(buf) }, nil
}
