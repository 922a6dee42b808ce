package dtrie

import "github.com/dtrie-go/dtrie/internal/builder"

// Entry is one key/value pair supplied to Build.
type Entry = builder.Entry

// Build constructs a trie image from entries. entries must already be
// sorted ascending by Key under unsigned byte comparison, contain no
// duplicate keys, no key containing the byte 0x00, and no value exceeding
// 2^31-1. Violating any precondition aborts the build and returns an
// error; no partial image is produced.
//
// The returned bytes can be written to a file for later Open, or wrapped
// directly with OpenBytes.
func Build(entries []Entry) ([]byte, error) {
	return builder.Build(entries)
}
