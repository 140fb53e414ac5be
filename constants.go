package detar

const unknownValue = "unknown"

// blockSize is the fixed size of every header record and of the unit
// the contents of an entry are padded to.
const blockSize = 512

// Widths of the fixed header slots, in the order they appear.
const (
	nameWidth     = 100
	modeWidth     = 8
	uidWidth      = 8
	gidWidth      = 8
	sizeWidth     = 12
	mtimeWidth    = 12
	checksumWidth = 8
	linkNameWidth = 100
	unameWidth    = 32
	gnameWidth    = 32
	devWidth      = 8
	prefixWidth   = 155
)

// checksumOffset is where the checksum slot starts within a header
// record. The slot is read as spaces when the checksum is computed.
const checksumOffset = 148

// ustarAreaSize is the tail of a header record past the linkname slot.
// It holds either the ustar extension block or opaque padding.
const ustarAreaSize = 255

const (
	ustarMagic   = "ustar\x00"
	ustarVersion = "00"
)

// Algorithm is the compression algorithm.
type Algorithm uint8

const (
	NoAlgorithm Algorithm = iota
	GzipAlgorithm
	LZ4Algorithm
)

func (c Algorithm) String() string {
	switch c {
	case NoAlgorithm:
		return "none"
	case GzipAlgorithm:
		return "gzip"
	case LZ4Algorithm:
		return "lz4"
	default:
		return unknownValue
	}
}

// TypeFlag is the kind of an archive entry, decoded from the single
// type flag byte of its header.
type TypeFlag uint8

const (
	TypeNormalFile TypeFlag = iota
	TypeHardLink
	TypeSymbolicLink
	TypeCharacterSpecial
	TypeBlockSpecial
	TypeDirectory
	TypeFIFO
	TypeContiguousFile
	// TypeGlobalExtendedHeader is a PAX 'g' record holding metadata for
	// all following entries. Its payload is not interpreted.
	TypeGlobalExtendedHeader
	// TypeExtendedHeader is a PAX 'x' record holding metadata for the
	// next entry. Its payload is not interpreted.
	TypeExtendedHeader
	TypeVendorSpecific
	TypeInvalid
)

func (t TypeFlag) String() string {
	switch t {
	case TypeNormalFile:
		return "file"
	case TypeHardLink:
		return "hardlink"
	case TypeSymbolicLink:
		return "symlink"
	case TypeCharacterSpecial:
		return "chardev"
	case TypeBlockSpecial:
		return "blockdev"
	case TypeDirectory:
		return "dir"
	case TypeFIFO:
		return "fifo"
	case TypeContiguousFile:
		return "contiguous"
	case TypeGlobalExtendedHeader:
		return "pax-global"
	case TypeExtendedHeader:
		return "pax-next"
	case TypeVendorSpecific:
		return "vendor"
	case TypeInvalid:
		return "invalid"
	default:
		return unknownValue
	}
}

// typeFlagOf classifies a raw type flag byte. It is total: bytes
// outside the standard set map to TypeInvalid instead of failing.
func typeFlagOf(b byte) TypeFlag {
	switch b {
	case '0', 0:
		return TypeNormalFile
	case '1':
		return TypeHardLink
	case '2':
		return TypeSymbolicLink
	case '3':
		return TypeCharacterSpecial
	case '4':
		return TypeBlockSpecial
	case '5':
		return TypeDirectory
	case '6':
		return TypeFIFO
	case '7':
		return TypeContiguousFile
	case 'g':
		return TypeGlobalExtendedHeader
	case 'x':
		return TypeExtendedHeader
	}
	if b >= 'A' && b <= 'Z' {
		return TypeVendorSpecific
	}
	return TypeInvalid
}
