package detar

import (
	"strings"

	"github.com/pkg/errors"
)

// headerChecksum computes the standard unsigned checksum of a header
// record: the sum of all its bytes with the checksum slot read as
// spaces.
func headerChecksum(record []byte) uint64 {
	var sum uint64
	for i, b := range record {
		if i >= checksumOffset && i < checksumOffset+checksumWidth {
			b = ' '
		}
		sum += uint64(b)
	}
	return sum
}

// verifyChecksum checks the recorded checksum text of a header record
// against the computed sum. Writers pad the slot with spaces on either
// side of the octal digits; a record with no digits at all records no
// checksum and is not verified.
func verifyChecksum(record []byte, recorded string) error {
	recorded = strings.TrimSpace(recorded)
	if recorded == "" {
		return nil
	}
	want, err := parseOctal(recorded)
	if err != nil {
		return err
	}
	if got := headerChecksum(record); got != want {
		return errors.Wrapf(ErrChecksumMismatch, "recorded %#o, computed %#o", want, got)
	}
	return nil
}
