//go:build !linux
// +build !linux

package detar

import (
	"fmt"
	"os"
)

// MapFile reads the archive at path into memory. Mapping is only
// implemented on Linux; elsewhere the file is read in full and the
// returned close function is a no-op.
func MapFile(path string) ([]byte, func() error, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return buf, func() error { return nil }, nil
}
