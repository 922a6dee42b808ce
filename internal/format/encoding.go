package format

import (
	"encoding/binary"

	"github.com/dtrie-go/dtrie/internal/buf"
)

// Binary encoding utilities for little-endian 32-bit node words.
//
// Implementation: uses encoding/binary.LittleEndian. Benchmarking unsafe
// pointer casts against this showed no measurable benefit on modern Go
// compilers, which inline binary.LittleEndian calls well, so we keep the
// straightforward version.

// PutU32 writes a uint32 value to b at off in little-endian format.
func PutU32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// ReadU32 reads a uint32 value from b at off in little-endian format.
// Returns 0 if the read would fall outside b.
func ReadU32(b []byte, off int) uint32 {
	if off < 0 || off+4 > len(b) {
		return 0
	}
	return buf.U32LE(b[off:])
}
