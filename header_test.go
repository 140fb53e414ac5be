package detar

import (
	"errors"
	"fmt"
	"testing"

	"gotest.tools/v3/assert"
)

// testHeader describes a header record for buildRecord.
type testHeader struct {
	name     string
	mode     string
	uid      uint64
	gid      uint64
	size     uint64
	mtime    uint64
	typeflag byte
	linkname string
	ustar    bool
	uname    string
	gname    string
	devmajor uint64
	devminor uint64
	prefix   string
}

// buildRecord lays out one 512-byte header record with a valid
// checksum, following the ustar interchange format.
func buildRecord(h testHeader) []byte {
	record := make([]byte, blockSize)
	copy(record[0:], h.name)
	copy(record[100:], h.mode)
	copy(record[108:], fmt.Sprintf("%07o", h.uid))
	copy(record[116:], fmt.Sprintf("%07o", h.gid))
	copy(record[124:], fmt.Sprintf("%011o", h.size))
	copy(record[136:], fmt.Sprintf("%011o", h.mtime))
	record[156] = h.typeflag
	copy(record[157:], h.linkname)
	if h.ustar {
		copy(record[257:], ustarMagic+ustarVersion)
		copy(record[265:], h.uname)
		copy(record[297:], h.gname)
		copy(record[329:], fmt.Sprintf("%07o", h.devmajor))
		copy(record[337:], fmt.Sprintf("%07o", h.devminor))
		copy(record[345:], h.prefix)
	}
	copy(record[checksumOffset:], fmt.Sprintf("%06o\x00 ", headerChecksum(record)))
	return record
}

// buildEntry lays out a whole entry: header record, contents and the
// zero padding aligning the next record.
func buildEntry(h testHeader, contents string) []byte {
	h.size = uint64(len(contents))
	buf := buildRecord(h)
	buf = append(buf, contents...)
	if padding := (blockSize - len(contents)%blockSize) % blockSize; padding > 0 {
		buf = append(buf, make([]byte, padding)...)
	}
	return buf
}

func TestDecodeHeader(t *testing.T) {
	record := buildRecord(testHeader{
		name:     "dir/file.txt",
		mode:     "0000644",
		uid:      1000,
		gid:      100,
		size:     1234,
		mtime:    1600000000,
		typeflag: '0',
		ustar:    true,
		uname:    "moycat",
		gname:    "users",
		devmajor: 8,
		devminor: 1,
		prefix:   "some/long/path",
	})
	r := &reader{buf: record}
	h, err := decodeHeader(r)
	assert.NilError(t, err)
	assert.Equal(t, r.off, blockSize)
	assert.Equal(t, h.Name, "dir/file.txt")
	assert.Equal(t, h.Mode, "0000644")
	assert.Equal(t, h.UID, uint64(1000))
	assert.Equal(t, h.GID, uint64(100))
	assert.Equal(t, h.Size, uint64(1234))
	assert.Equal(t, h.ModTime, uint64(1600000000))
	assert.Equal(t, h.TypeFlag, TypeNormalFile)
	assert.Equal(t, h.LinkName, "")
	assert.Assert(t, h.Ustar != nil)
	assert.Equal(t, h.Ustar.Magic, ustarMagic)
	assert.Equal(t, h.Ustar.Version, ustarVersion)
	assert.Equal(t, h.Ustar.Uname, "moycat")
	assert.Equal(t, h.Ustar.Gname, "users")
	assert.Equal(t, h.Ustar.DevMajor, uint64(8))
	assert.Equal(t, h.Ustar.DevMinor, uint64(1))
	assert.Equal(t, h.Ustar.Prefix, "some/long/path")
	assert.Equal(t, h.FullName(), "some/long/path/dir/file.txt")
}

func TestDecodeHeader_noUstar(t *testing.T) {
	record := buildRecord(testHeader{name: "plain", mode: "0000600", typeflag: '0'})
	r := &reader{buf: record}
	h, err := decodeHeader(r)
	assert.NilError(t, err)
	// The whole record is consumed even without the extension.
	assert.Equal(t, r.off, blockSize)
	assert.Assert(t, h.Ustar == nil)
	assert.Equal(t, h.FullName(), "plain")
}

func TestDecodeHeader_badVersion(t *testing.T) {
	record := buildRecord(testHeader{name: "f", typeflag: '0', ustar: true, uname: "root"})
	record[263] = '9'
	r := &reader{buf: record}
	h, err := decodeHeader(r)
	// A version mismatch downgrades to plain padding, never an error.
	assert.NilError(t, err)
	assert.Assert(t, h.Ustar == nil)
	assert.Equal(t, r.off, blockSize)
}

func TestDecodeHeader_badUstarField(t *testing.T) {
	record := buildRecord(testHeader{name: "f", typeflag: '0', ustar: true, uname: "root"})
	// Invalid text in uname downgrades the extension to padding too.
	record[265] = 0xff
	r := &reader{buf: record}
	h, err := decodeHeader(r)
	assert.NilError(t, err)
	assert.Assert(t, h.Ustar == nil)
	assert.Equal(t, r.off, blockSize)
}

func TestDecodeHeader_invalidUID(t *testing.T) {
	record := buildRecord(testHeader{name: "f", typeflag: '0'})
	record[108] = '9'
	r := &reader{buf: record}
	_, err := decodeHeader(r)
	assert.Assert(t, errors.Is(err, ErrInvalidOctalDigit))
	var fieldErr *FieldError
	assert.Assert(t, errors.As(err, &fieldErr))
	assert.Equal(t, fieldErr.Field, "uid")
	assert.Equal(t, fieldErr.Offset, 108)
}

func TestDecodeHeader_unterminatedName(t *testing.T) {
	longName := ""
	for len(longName) < nameWidth {
		longName += "n"
	}
	record := buildRecord(testHeader{name: longName, typeflag: '0'})
	r := &reader{buf: record}
	h, err := decodeHeader(r)
	assert.NilError(t, err)
	// A name filling its slot without a NUL is taken whole.
	assert.Equal(t, h.Name, longName)
}

func TestDecodeHeader_truncated(t *testing.T) {
	record := buildRecord(testHeader{name: "f", typeflag: '0'})
	r := &reader{buf: record[:300]}
	_, err := decodeHeader(r)
	assert.Assert(t, errors.Is(err, ErrUnexpectedEOF))
	var fieldErr *FieldError
	assert.Assert(t, errors.As(err, &fieldErr))
	assert.Equal(t, fieldErr.Field, "ustar")
}

func Test_typeFlagOf(t *testing.T) {
	assert.Equal(t, typeFlagOf('0'), TypeNormalFile)
	assert.Equal(t, typeFlagOf(0), TypeNormalFile)
	assert.Equal(t, typeFlagOf('1'), TypeHardLink)
	assert.Equal(t, typeFlagOf('2'), TypeSymbolicLink)
	assert.Equal(t, typeFlagOf('3'), TypeCharacterSpecial)
	assert.Equal(t, typeFlagOf('4'), TypeBlockSpecial)
	assert.Equal(t, typeFlagOf('5'), TypeDirectory)
	assert.Equal(t, typeFlagOf('6'), TypeFIFO)
	assert.Equal(t, typeFlagOf('7'), TypeContiguousFile)
	assert.Equal(t, typeFlagOf('g'), TypeGlobalExtendedHeader)
	assert.Equal(t, typeFlagOf('x'), TypeExtendedHeader)
	assert.Equal(t, typeFlagOf('A'), TypeVendorSpecific)
	assert.Equal(t, typeFlagOf('M'), TypeVendorSpecific)
	assert.Equal(t, typeFlagOf('Z'), TypeVendorSpecific)
	assert.Equal(t, typeFlagOf('8'), TypeInvalid)
	assert.Equal(t, typeFlagOf('9'), TypeInvalid)
	assert.Equal(t, typeFlagOf('a'), TypeInvalid)
	// Total over every byte value: nothing maps outside the closed set.
	for i := 0; i < 256; i++ {
		flag := typeFlagOf(byte(i))
		assert.Assert(t, flag <= TypeInvalid)
		assert.Assert(t, flag.String() != unknownValue)
	}
}
