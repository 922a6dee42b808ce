package format

import "errors"

var (
	// ErrTruncated indicates the image lacked the bytes required for a word.
	ErrTruncated = errors.New("format: truncated image")

	// ErrNotFound indicates a requested key had no matching leaf.
	ErrNotFound = errors.New("format: not found")

	// ErrBoundsCheck indicates a node index fell outside the image.
	ErrBoundsCheck = errors.New("format: node index out of bounds")

	// ErrValueOverflow indicates a value does not fit the 31-bit payload.
	ErrValueOverflow = errors.New("format: value exceeds 31 bits")

	// ErrOffsetOverflow indicates an offset does not fit the 29-bit range,
	// or is at least 2^21 with nonzero low 8 bits, which the extend trick
	// cannot store.
	ErrOffsetOverflow = errors.New("format: offset exceeds encodable range")
)
