package detar

import (
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"
)

func TestMapFile(t *testing.T) {
	buf := buildEntry(testHeader{name: "mapped.txt", typeflag: '0'}, "mapped contents")
	tmpFile := fs.NewFile(t, "test", fs.WithBytes(buf))
	mapped, closeBuf, err := MapFile(tmpFile.Path())
	assert.NilError(t, err)
	entries, err := Decode(mapped)
	assert.NilError(t, err)
	assert.Equal(t, len(entries), 1)
	assert.Equal(t, string(entries[0].Contents), "mapped contents")
	// The views are dead once the buffer is released.
	assert.NilError(t, closeBuf())
}

func TestMapFile_empty(t *testing.T) {
	tmpFile := fs.NewFile(t, "test")
	buf, closeBuf, err := MapFile(tmpFile.Path())
	assert.NilError(t, err)
	assert.Equal(t, len(buf), 0)
	assert.NilError(t, closeBuf())
}

func TestMapFile_missing(t *testing.T) {
	_, _, err := MapFile("/nonexistent/archive.tar")
	assert.Assert(t, err != nil)
}
