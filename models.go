package detar

import "path"

type private interface{}

type Option func(i private) error

// PosixHeader is one decoded 512-byte header record. Numeric fields
// are decoded from their octal text form; Mode and Checksum are kept
// as text, the way the archive stores them.
type PosixHeader struct {
	Name     string
	Mode     string
	UID      uint64
	GID      uint64
	Size     uint64
	ModTime  uint64 // seconds since the Unix epoch
	Checksum string
	TypeFlag TypeFlag
	LinkName string
	Ustar    *UstarHeader // nil unless the ustar magic matched
}

// UstarHeader is the POSIX ustar extension block of a header record.
type UstarHeader struct {
	Magic    string
	Version  string
	Uname    string
	Gname    string
	DevMajor uint64
	DevMinor uint64
	Prefix   string
}

// TarEntry pairs one decoded header with its contents. Contents is a
// view into the decoded buffer and must not outlive it.
type TarEntry struct {
	Header   PosixHeader
	Contents []byte
}

// FullName returns the entry path with the ustar prefix prepended,
// when one is present.
func (h *PosixHeader) FullName() string {
	if h.Ustar != nil && h.Ustar.Prefix != "" {
		return path.Join(h.Ustar.Prefix, h.Name)
	}
	return h.Name
}
