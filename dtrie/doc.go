// Package dtrie is a compact, read-only, byte-keyed ordered map backed by a
// double-array trie. Build turns a sorted keyset into a flat byte image;
// Open or OpenBytes load that image for querying without allocating beyond
// the per-call iterator state.
//
// Keys follow the implicit-terminator contract: raw byte strings with no
// trailing NUL. A key may not contain the byte 0x00.
package dtrie
