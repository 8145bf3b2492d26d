// Package id generates the sortable identifiers used for form sessions and
// request IDs.
package id

import (
	"crypto/rand"
	"encoding/binary"
	"strings"
	"time"
)

// Crockford base32, without I, L, O and U.
const crockfordBase32 = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// ULIDLength is the length of a ULID string.
const ULIDLength = 26

// NewULID returns a 26-character ULID: 48 bits of millisecond time
// followed by 80 random bits. ULIDs sort by creation time.
func NewULID() string {
	return newULID(time.Now())
}

func newULID(now time.Time) string {
	var entropy [10]byte
	if _, err := rand.Read(entropy[:]); err != nil {
		binary.BigEndian.PutUint64(entropy[:8], uint64(now.UnixNano()))
	}

	// 128 bits: 16-bit zero pad, 48-bit time, 80-bit entropy.
	hi := uint64(now.UnixMilli())<<16 | uint64(binary.BigEndian.Uint16(entropy[:2]))
	lo := binary.BigEndian.Uint64(entropy[2:])

	var out [ULIDLength]byte
	// 26 chars * 5 bits = 130 bits; the top 2 bits are always zero.
	for i := ULIDLength - 1; i >= 0; i-- {
		out[i] = crockfordBase32[lo&0x1F]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}

// IsULID reports whether s has the shape of a ULID produced by NewULID.
func IsULID(s string) bool {
	if len(s) != ULIDLength || s[0] > '7' {
		return false
	}
	for i := range len(s) {
		if !strings.ContainsRune(crockfordBase32, rune(s[i])) {
			return false
		}
	}
	return true
}
