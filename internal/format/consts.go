// Package format implements the byte-exact double-array node encoding: a
// flat, little-endian array of 32-bit words that is memory-mapped or loaded
// verbatim and walked without further allocation. It has no signature, no
// header, and no footer — the image is the array.
package format

const (
	// BlockSize is the number of cells in one double-array block (also the
	// number of distinct single-byte labels).
	BlockSize = 256

	// WordSize is the size in bytes of one node word.
	WordSize = 4

	// InvalidNext is the free-list sentinel meaning "no next unused cell".
	InvalidNext = 0

	// InvalidPrev is the free-list sentinel meaning "no previous unused cell".
	InvalidPrev = 255
)
