// Package uuid provides UUID v7 generation.
// UUID v7 is sortable by timestamp, which keeps audit queries by recency cheap.
package uuid

import (
	"crypto/rand"
	"fmt"
	"time"
)

// UUID represents a UUID v7 identifier.
type UUID [16]byte

// NewV7 generates a new UUID v7 (draft-ietf-uuidrev-rfc4122bis):
// 48 bits of millisecond UNIX timestamp, then version/variant bits,
// then random filler from crypto/rand.
func NewV7() UUID {
	var u UUID

	now := time.Now().UnixMilli()
	u[0] = byte(now >> 40)
	u[1] = byte(now >> 32)
	u[2] = byte(now >> 24)
	u[3] = byte(now >> 16)
	u[4] = byte(now >> 8)
	u[5] = byte(now)

	// rand.Read on crypto/rand never fails (it panics internally on a broken
	// system source), so the error is ignored.
	_, _ = rand.Read(u[6:])

	// Version 7 in the high nibble of byte 6, RFC 4122 variant in byte 8.
	u[6] = 0x70 | (u[6] & 0x0f)
	u[8] = 0x80 | (u[8] & 0x3f)

	return u
}

// String returns the UUID in standard form: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		u[0:4],
		u[4:6],
		u[6:8],
		u[8:10],
		u[10:16],
	)
}
